package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateGrowth(t *testing.T) {
	tests := []struct {
		name      string
		today     float64
		yesterday float64
		want      float64
	}{
		{"crescimento", 150, 100, 50},
		{"queda", 50, 100, -50},
		{"sem variação", 100, 100, 0},
		{"ontem zero hoje zero", 0, 0, 0},
		{"ontem zero hoje positivo", 80, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CalculateGrowth(tt.today, tt.yesterday), 0.001)
		})
	}
}

func TestPtr(t *testing.T) {
	p := Ptr(25)
	assert.NotNil(t, p)
	assert.Equal(t, 25, *p)
}
