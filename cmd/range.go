package cmd

import (
	"fmt"
	"time"

	"github.com/Reminerva/Proyek-Data-Analysis/internal/dataset"
	errs "github.com/Reminerva/Proyek-Data-Analysis/pkg/errors"
)

// resolveRange turns the --start/--end flag values into a date range,
// defaulting each side to the loaded data's purchase span.
func resolveRange(ds *dataset.Dataset, startFlag, endFlag string) (dataset.DateRange, error) {
	full, ok := ds.FullRange()
	if !ok {
		return dataset.DateRange{}, errs.New(errs.ErrCodeDataEmpty, "dataset contains no orders")
	}

	start := full.Start
	end := full.End

	if startFlag != "" {
		t, err := time.Parse(dataset.DateFormat, startFlag)
		if err != nil {
			return dataset.DateRange{}, errs.ValidationError("start", startFlag,
				fmt.Sprintf("expected %s", dataset.DateFormat))
		}
		start = t
	}
	if endFlag != "" {
		t, err := time.Parse(dataset.DateFormat, endFlag)
		if err != nil {
			return dataset.DateRange{}, errs.ValidationError("end", endFlag,
				fmt.Sprintf("expected %s", dataset.DateFormat))
		}
		end = t
	}

	return dataset.NewDateRange(start, end)
}
