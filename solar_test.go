package topo

import (
	"math"
	"testing"
	"time"
)

func TestNewSolarGeomFromTime(t *testing.T) {
	// summer solstice, local solar noon at 150W: declination at its maximum
	// and the sun due south
	sg := NewSolarGeomFromTime(time.Date(2023, 6, 21, 22, 0, 0, 0, time.UTC), 64.73, -150.)
	if sg.Decl < 23.40 || sg.Decl > 23.45 {
		t.Errorf("solstice declination = %v, want 23.44", sg.Decl)
	}
	if sg.Azim < 175. || sg.Azim > 185. {
		t.Errorf("solar-noon azimuth = %v, want ~180", sg.Azim)
	}
}

func TestNewSolarGeomFromTimeMorning(t *testing.T) {
	// six hours earlier the sun sits east of the meridian
	sg := NewSolarGeomFromTime(time.Date(2023, 6, 21, 16, 0, 0, 0, time.UTC), 64.73, -150.)
	if sg.Azim < 45. || sg.Azim > 175. {
		t.Errorf("morning azimuth = %v, want east of south", sg.Azim)
	}
}

func TestNewSolarGeomFromTimeEquinox(t *testing.T) {
	sg := NewSolarGeomFromTime(time.Date(2023, 3, 20, 21, 24, 0, 0, time.UTC), 64.73, -150.)
	if math.Abs(sg.Decl) > 0.1 {
		t.Errorf("equinox declination = %v, want ~0", sg.Decl)
	}
}
