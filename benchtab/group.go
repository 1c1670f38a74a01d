// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"fmt"
	"sort"

	"github.com/aclements/go-gg/generic"
	"github.com/aclements/go-gg/table"
)

// A Group is the set of rows of a Table that have equal values in
// every grouping column, sorted by a sort column.
type Group struct {
	// Key holds the group's value of each grouping column, in the
	// order the columns were given to GroupBy.
	Key []string

	*Table

	vals []interface{}
}

// GroupBy partitions the rows of t by the values of the key columns
// and sorts each partition by sortCol.
//
// Every row of t lands in exactly one Group. The sort is stable, so
// rows with equal sortCol values keep their order from t. Groups are
// ordered by their key values, comparing the first key column first.
// A key column whose values are all numbers is ordered numerically,
// so "2" sorts before "10".
func GroupBy(t *Table, sortCol string, keys ...string) ([]*Group, error) {
	for _, col := range keys {
		if !t.Has(col) {
			return nil, &InputError{Column: col, Err: ErrMissingColumn}
		}
	}
	if !t.Has(sortCol) {
		return nil, &InputError{Column: sortCol, Err: ErrMissingColumn}
	}

	g := table.SortBy(table.GroupBy(t.t, keys...), sortCol)

	groups := make([]*Group, 0, len(g.Tables()))
	for _, gid := range g.Tables() {
		gt := g.Table(gid)
		grp := &Group{
			Key:   make([]string, len(keys)),
			Table: &Table{gt},
			vals:  make([]interface{}, len(keys)),
		}
		for i, col := range keys {
			v, ok := gt.Const(col)
			if !ok {
				// GroupBy always promotes its columns to
				// constants.
				panic(fmt.Sprintf("grouping column %q is not constant", col))
			}
			grp.Key[i] = fmt.Sprint(v)
			grp.vals[i] = v
		}
		groups = append(groups, grp)
	}

	for i := range keys {
		numericKey(groups, i)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return keyLess(groups[i].vals, groups[j].vals)
	})
	return groups, nil
}

func keyLess(a, b []interface{}) bool {
	for i := range a {
		if c := generic.Order(a[i], b[i]); c != 0 {
			return c < 0
		}
	}
	return false
}

// numericKey replaces the i'th sort value of every group with its
// number if all of them parse as finite numbers.
func numericKey(groups []*Group, i int) {
	nums := make([]float64, len(groups))
	for j, g := range groups {
		x, ok := parseFloat(g.Key[i])
		if !ok {
			return
		}
		nums[j] = x
	}
	for j, g := range groups {
		g.vals[i] = nums[j]
	}
}
