package series_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/heatcurve/internal/curve"
	"github.com/san-kum/heatcurve/internal/series"
)

var _ = Describe("Build", func() {
	var s series.Series

	BeforeEach(func() {
		s = series.Build(21, 1.5)
	})

	It("samples 51 points from 25 down to -25", func() {
		Expect(s).To(HaveLen(51))
		Expect(s[0].OutsideTemp).To(Equal(25.0))
		Expect(s[len(s)-1].OutsideTemp).To(Equal(-25.0))
	})

	It("steps the outside temperature down by one degree", func() {
		for i := 1; i < len(s); i++ {
			Expect(s[i-1].OutsideTemp - s[i].OutsideTemp).To(Equal(1.0))
		}
	})

	It("evaluates every point with the curve function", func() {
		for _, p := range s {
			Expect(p.FlowTemp).To(Equal(curve.FlowTemp(21, p.OutsideTemp, 1.5)))
		}
	})

	It("is non-decreasing towards the cold end", func() {
		for i := 1; i < len(s); i++ {
			Expect(s[i].FlowTemp).To(BeNumerically(">=", s[i-1].FlowTemp))
		}
	})

	It("flattens at the setpoint where it is warmer outside", func() {
		for _, p := range s {
			Expect(math.IsNaN(p.FlowTemp)).To(BeFalse())
			if p.OutsideTemp >= 21 {
				Expect(p.FlowTemp).To(Equal(21.0))
			}
		}
	})

	It("returns an independent slice on every call", func() {
		again := series.Build(21, 1.5)
		Expect(again).To(Equal(s))
		again[0].FlowTemp = -1
		Expect(s[0].FlowTemp).To(Equal(21.0))
	})

	It("exposes axis values and bounds", func() {
		Expect(s.OutsideTemps()).To(HaveLen(51))
		Expect(s.FlowTemps()[30]).To(Equal(s[30].FlowTemp))
		lo, hi := s.Bounds()
		Expect(lo).To(Equal(21.0))
		Expect(hi).To(BeNumerically("~", 90.31743298296875, 1e-9))
	})

	It("looks up a point by outside temperature", func() {
		p, ok := s.At(0)
		Expect(ok).To(BeTrue())
		Expect(p.FlowTemp).To(BeNumerically("~", 58.60299287317604, 1e-9))

		_, ok = s.At(0.5)
		Expect(ok).To(BeFalse())
	})

	It("reports zero bounds for an empty series", func() {
		lo, hi := series.Series{}.Bounds()
		Expect(lo).To(BeZero())
		Expect(hi).To(BeZero())
	})
})

var _ = Describe("BuildTable", func() {
	It("has one row per representative outside temperature, in order", func() {
		tbl := series.BuildTable(21, 1.5)
		Expect(tbl.Rows).To(HaveLen(7))

		outs := make([]float64, len(tbl.Rows))
		for i, r := range tbl.Rows {
			outs[i] = r.OutsideTemp
		}
		Expect(outs).To(Equal([]float64{20, 15, 10, 0, -10, -15, -20}))
	})

	It("computes the mid column at the selected label", func() {
		tbl := series.BuildTable(21, 1.5)
		for _, r := range tbl.Rows {
			Expect(r.Mid).To(Equal(curve.FlowTemp(21, r.OutsideTemp, 1.5)))
		}
	})

	It("uses the displayed neighbour labels for the outer columns", func() {
		tbl := series.BuildTable(21, 1.5)
		Expect(tbl.Labels).To(Equal(series.Labels{Low: 1.45, Mid: 1.5, High: 1.55}))
		for _, r := range tbl.Rows {
			Expect(r.Low).To(Equal(curve.FlowTemp(21, r.OutsideTemp, 1.45)))
			Expect(r.High).To(Equal(curve.FlowTemp(21, r.OutsideTemp, 1.55)))
			Expect(r.Low).To(BeNumerically("<", r.Mid))
			Expect(r.High).To(BeNumerically(">", r.Mid))
		}
	})

	It("matches the reference values at one decimal", func() {
		tbl := series.BuildTable(21, 1.5)
		Expect(tbl.Rows[3].Low).To(BeNumerically("~", 57.6, 0.05))
		Expect(tbl.Rows[3].Mid).To(BeNumerically("~", 58.6, 0.05))
		Expect(tbl.Rows[3].High).To(BeNumerically("~", 59.6, 0.05))
		Expect(tbl.Rows[6].Mid).To(BeNumerically("~", 84.4, 0.05))
	})

	DescribeTable("clamps neighbour labels to the label range",
		func(center, low, high float64) {
			tbl := series.BuildTable(21, center)
			Expect(tbl.Labels.Low).To(Equal(low))
			Expect(tbl.Labels.High).To(Equal(high))
		},
		Entry("near the lower bound", 0.12, 0.1, 0.17),
		Entry("at the lower bound", 0.1, 0.1, 0.15),
		Entry("near the upper bound", 3.98, 3.93, 4.0),
		Entry("at the upper bound", 4.0, 3.95, 4.0),
	)

	It("uses the clamped label for the low column", func() {
		tbl := series.BuildTable(21, 0.12)
		Expect(tbl.Rows[0].Low).To(Equal(curve.FlowTemp(21, 20, 0.1)))
	})

	It("records the setpoint", func() {
		Expect(series.BuildTable(19.5, 1).Target).To(Equal(19.5))
	})

	It("is unaffected by changes to the returned outside temperatures", func() {
		temps := series.TableOutsideTemps()
		Expect(temps).To(Equal([]float64{20, 15, 10, 0, -10, -15, -20}))
		temps[0] = 99

		Expect(series.TableOutsideTemps()[0]).To(Equal(20.0))
		Expect(series.BuildTable(21, 1.5).Rows[0].OutsideTemp).To(Equal(20.0))
	})
})
