package cyclesperbyte

import (
	"math"
	"testing"
)

func TestFormatValue(t *testing.T) {
	f := cyclesFormatter{}

	tests := []struct {
		value float64
		want  string
	}{
		{1234.5, "1234.5000 cycles"},
		{0, "0.0000 cycles"},
		{0.00004, "0.0000 cycles"},
		{1e9, "1000000000.0000 cycles"},
	}

	for _, tt := range tests {
		if got := f.FormatValue(tt.value); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatThroughput(t *testing.T) {
	f := cyclesFormatter{}

	tests := []struct {
		name       string
		throughput Throughput
		value      float64
		want       string
	}{
		{"bytes", Bytes(2), 1000.0, "500.0000 cpb"},
		{"bytes whole", Bytes(16), 3200.0, "200.0000 cpb"},
		{"elements unscaled", Elements(5), 1000.0, "1000.0000 cycles/5"},
		{"decimal bytes", BytesDecimal(2), 1000.0, "500.0000 cpb (decimal)"},
		{"zero denominator", Bytes(0), 1000.0, "+Inf cpb"},
		{"zero over zero", Bytes(0), 0.0, "NaN cpb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.FormatThroughput(tt.throughput, tt.value); got != tt.want {
				t.Errorf("FormatThroughput(%v, %v) = %q, want %q",
					tt.throughput, tt.value, got, tt.want)
			}
		})
	}
}

func TestScaleValuesIdentity(t *testing.T) {
	f := cyclesFormatter{}

	values := []float64{1.0, 2.0}

	if label := f.ScaleValues(9999.0, values); label != "cycles" {
		t.Errorf("ScaleValues label = %q, want %q", label, "cycles")
	}

	if values[0] != 1.0 || values[1] != 2.0 {
		t.Errorf("ScaleValues modified values: %v", values)
	}
}

func TestScaleThroughputs(t *testing.T) {
	f := cyclesFormatter{}

	tests := []struct {
		name       string
		throughput Throughput
		values     []float64
		wantVals   []float64
		wantLabel  string
	}{
		{"bytes", Bytes(4), []float64{8.0, 16.0}, []float64{2.0, 4.0}, "cpb"},
		{"elements", Elements(2), []float64{8.0, 16.0}, []float64{4.0, 8.0}, "c/e"},
		{"decimal bytes", BytesDecimal(8), []float64{16.0}, []float64{2.0}, "cpb (decimal)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label := f.ScaleThroughputs(123.0, tt.throughput, tt.values)

			if label != tt.wantLabel {
				t.Errorf("label = %q, want %q", label, tt.wantLabel)
			}

			for i, v := range tt.values {
				if v != tt.wantVals[i] {
					t.Errorf("values[%d] = %v, want %v", i, v, tt.wantVals[i])
				}
			}
		})
	}
}

func TestScaleThroughputsZeroDenominator(t *testing.T) {
	f := cyclesFormatter{}

	values := []float64{8.0, 0.0}
	f.ScaleThroughputs(0, Bytes(0), values)

	if !math.IsInf(values[0], 1) {
		t.Errorf("values[0] = %v, want +Inf", values[0])
	}

	if !math.IsNaN(values[1]) {
		t.Errorf("values[1] = %v, want NaN", values[1])
	}
}

func TestScaleForMachinesIdentity(t *testing.T) {
	f := cyclesFormatter{}

	values := []float64{3.0, 7.0}

	if label := f.ScaleForMachines(values); label != "cycles" {
		t.Errorf("ScaleForMachines label = %q, want %q", label, "cycles")
	}

	if values[0] != 3.0 || values[1] != 7.0 {
		t.Errorf("ScaleForMachines modified values: %v", values)
	}
}

func TestThroughputString(t *testing.T) {
	tests := []struct {
		throughput Throughput
		want       string
	}{
		{Bytes(16), "16 bytes"},
		{BytesDecimal(1000), "1000 bytes (decimal)"},
		{Elements(5), "5 elements"},
		{Throughput{Kind: 42}, "unknown throughput kind 42"},
	}

	for _, tt := range tests {
		if got := tt.throughput.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
