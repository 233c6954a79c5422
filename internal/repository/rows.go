package repository

import (
	"database/sql"
	"fmt"
	"sort"

	"gorm.io/gorm"
)

// ErrNotFound 单行查询未命中
var ErrNotFound = gorm.ErrRecordNotFound

// ColumnError 结果集缺少模型需要的列
type ColumnError struct {
	Table  string
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s: result set has no column %q", e.Table, e.Column)
}

// record 由 model 实现：列名 -> 字段指针
type record interface {
	TableName() string
	ScanFields() map[string]interface{}
}

// scanPlan 按结果集列顺序排好的扫描目标
type scanPlan struct {
	columns []string
}

func newScanPlan(columns []string, sample record) (*scanPlan, error) {
	present := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		present[c] = struct{}{}
	}

	required := make([]string, 0)
	for c := range sample.ScanFields() {
		required = append(required, c)
	}
	sort.Strings(required)

	for _, c := range required {
		if _, ok := present[c]; !ok {
			return nil, &ColumnError{Table: sample.TableName(), Column: c}
		}
	}
	return &scanPlan{columns: columns}, nil
}

func (p *scanPlan) scan(rows *sql.Rows, dest record) error {
	fields := dest.ScanFields()
	targets := make([]interface{}, len(p.columns))
	for i, c := range p.columns {
		if ptr, ok := fields[c]; ok {
			targets[i] = ptr
			continue
		}
		var discard interface{}
		targets[i] = &discard
	}
	if err := rows.Scan(targets...); err != nil {
		return fmt.Errorf("scan %s row: %w", dest.TableName(), err)
	}
	return nil
}

// queryAll 执行查询并把每一行解码为新的 T，保留数据库返回的顺序
func queryAll[T any, PT interface {
	*T
	record
}](db *gorm.DB, query string, args ...interface{}) ([]*T, error) {
	rows, err := db.Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plan, err := planFor[T, PT](rows)
	if err != nil {
		return nil, err
	}

	result := make([]*T, 0)
	for rows.Next() {
		item := PT(new(T))
		if err := plan.scan(rows, item); err != nil {
			return nil, err
		}
		result = append(result, (*T)(item))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// queryOne 只读取第一行，无结果时返回 ErrNotFound
func queryOne[T any, PT interface {
	*T
	record
}](db *gorm.DB, query string, args ...interface{}) (*T, error) {
	rows, err := db.Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plan, err := planFor[T, PT](rows)
	if err != nil {
		return nil, err
	}

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNotFound
	}

	item := PT(new(T))
	if err := plan.scan(rows, item); err != nil {
		return nil, err
	}
	return (*T)(item), nil
}

func planFor[T any, PT interface {
	*T
	record
}](rows *sql.Rows) (*scanPlan, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	return newScanPlan(columns, PT(new(T)))
}
