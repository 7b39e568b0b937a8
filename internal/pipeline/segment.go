package pipeline

import (
	"fmt"
	"math"

	errs "github.com/Reminerva/Proyek-Data-Analysis/pkg/errors"
)

// Segment labels, lowest band first.
var segmentLabels = [...]string{
	"Klaster I",
	"Klaster II",
	"Klaster III",
	"Klaster IV",
	"Klaster V",
	"Klaster VI",
	"Klaster VII",
}

// SegmentCount is the number of bands produced by segmentation.
const SegmentCount = len(segmentLabels)

// SegmentBucket is one band of the segmentation. Bounds are half-open:
// a value lands here when Lower <= value < Upper. The lowest band starts
// at zero and the highest band has Upper = +Inf.
type SegmentBucket struct {
	Label     string
	Lower     float64
	Upper     float64
	Count     int
	MemberIDs []string
	Values    []float64
}

// Segmentation is the full band set for one entity kind. All bands are
// always present, including empty ones.
type Segmentation struct {
	Entity  string
	Buckets []SegmentBucket
}

// Total returns the number of segmented entities.
func (s Segmentation) Total() int {
	n := 0
	for _, b := range s.Buckets {
		n += b.Count
	}
	return n
}

// newSegmentation validates thresholds and builds the empty band set.
// Exactly SegmentCount-1 strictly increasing positive thresholds are
// required.
func newSegmentation(entity string, thresholds []float64) (*Segmentation, error) {
	if len(thresholds) != SegmentCount-1 {
		return nil, errs.ValidationError("thresholds", len(thresholds),
			fmt.Sprintf("%s segmentation needs exactly %d thresholds", entity, SegmentCount-1))
	}
	prev := 0.0
	for _, t := range thresholds {
		if t <= prev {
			return nil, errs.ValidationError("thresholds", t,
				fmt.Sprintf("%s segmentation thresholds must be positive and strictly increasing", entity))
		}
		prev = t
	}

	buckets := make([]SegmentBucket, SegmentCount)
	for i := range buckets {
		lower := 0.0
		if i > 0 {
			lower = thresholds[i-1]
		}
		upper := math.Inf(1)
		if i < len(thresholds) {
			upper = thresholds[i]
		}
		buckets[i] = SegmentBucket{Label: segmentLabels[i], Lower: lower, Upper: upper}
	}
	return &Segmentation{Entity: entity, Buckets: buckets}, nil
}

func (s *Segmentation) place(id string, value float64) {
	for i := range s.Buckets {
		b := &s.Buckets[i]
		if value >= b.Lower && value < b.Upper {
			b.Count++
			b.MemberIDs = append(b.MemberIDs, id)
			b.Values = append(b.Values, value)
			return
		}
	}
}

// SegmentSellers bands sellers by summed item price.
func SegmentSellers(reports []SellerReport, thresholds []float64) (*Segmentation, error) {
	seg, err := newSegmentation("seller", thresholds)
	if err != nil {
		return nil, err
	}
	for _, r := range reports {
		seg.place(r.SellerID, r.Price.Sum)
	}
	return seg, nil
}

// SegmentCustomers bands customers by summed payment value per order.
func SegmentCustomers(reports []CustomerReport, thresholds []float64) (*Segmentation, error) {
	seg, err := newSegmentation("customer", thresholds)
	if err != nil {
		return nil, err
	}
	for _, r := range reports {
		seg.place(r.CustomerID, r.Payment.Sum)
	}
	return seg, nil
}
