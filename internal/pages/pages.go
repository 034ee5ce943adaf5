// Package pages runs the dashboard pipelines. Each page loads its datasets
// fresh from a Source, normalizes and joins them, derives its statistic and
// returns a shaped chart. Nothing is shared between runs.
package pages

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/dataset"
	"github.com/elizabeth-dyson/tidytuesday-tuition/internal/geo"
)

// Place is an institution with its resolved state, division and region.
type Place struct {
	dataset.Institution
	Division string
	Region   string
}

// Locate backfills the state from the state code and resolves its census placement.
func Locate(inst dataset.Institution) Place {
	inst.State = geo.CleanStateName(inst.State, inst.StateCode)
	loc := geo.Locate(inst.State)
	return Place{Institution: inst, Division: loc.Division, Region: loc.Region}
}

// tables is the decoded working set of one run. Only the requested datasets are set.
type tables struct {
	costs     []dataset.Cost
	salaries  []dataset.Salary
	diversity []dataset.Diversity
	income    []dataset.Income
}

// load fetches ids concurrently and decodes each. Any failure aborts the run.
func load(ctx context.Context, src dataset.Source, ids ...dataset.ID) (*tables, error) {
	raw, err := dataset.LoadAll(ctx, src, ids...)
	if err != nil {
		return nil, err
	}
	out := &tables{}
	for _, id := range ids {
		t := raw[id]
		switch id {
		case dataset.TuitionCost:
			out.costs, err = dataset.DecodeCosts(t)
		case dataset.SalaryPotential:
			out.salaries, err = dataset.DecodeSalaries(t)
		case dataset.DiversitySchool:
			out.diversity, err = dataset.DecodeDiversity(t)
		case dataset.TuitionIncome:
			out.income, err = dataset.DecodeIncome(t)
		default:
			err = fmt.Errorf("%w: %s", dataset.ErrUnknownDataset, id)
		}
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func logJoin(ctx context.Context, page string, left, right, out int) {
	zerolog.Ctx(ctx).Debug().
		Str("page", page).
		Int("left", left).
		Int("right", right).
		Int("joined", out).
		Msg("inner join")
}
