package engine

import (
	"context"

	"github.com/andareed/siftly-bikes/dataset"
)

type Options struct {
	TopN int
	// TopFromFiltered ranks days over the filtered records instead of the
	// whole dataset.
	TopFromFiltered bool
}

func (o Options) topN() int {
	if o.TopN <= 0 {
		return DefaultTopN
	}
	return o.TopN
}

// View bundles everything the presentation layer shows for one selection.
type View struct {
	Selection Selection
	Table     *dataset.Dataset
	Total     int
	Grouped   map[string]int
	Top       []DayCount
}

// ComputeView filters ds by sel and computes the total, the grouped sums over
// sel.Column and the top days. ctx is checked between steps.
func ComputeView(ctx context.Context, ds *dataset.Dataset, sel Selection, opts Options) (View, error) {
	table, err := ApplyFilter(ds, sel)
	if err != nil {
		return View{}, err
	}
	if err := ctx.Err(); err != nil {
		return View{}, err
	}

	v := View{Selection: sel, Table: table, Total: TotalCount(table)}
	if err := ctx.Err(); err != nil {
		return View{}, err
	}

	if v.Grouped, err = GroupedSums(table, sel.Column); err != nil {
		return View{}, err
	}
	if err := ctx.Err(); err != nil {
		return View{}, err
	}

	source := ds
	if opts.TopFromFiltered {
		source = table
	}
	v.Top = TopNDays(source, opts.topN())
	return v, nil
}
