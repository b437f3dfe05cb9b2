package pyinterp

// Common axis periods for convenience constructors.
const (
	// PeriodDegrees is the period of a longitude axis in degrees.
	PeriodDegrees = 360.0

	// PeriodRadians is the period of a longitude axis in radians.
	PeriodRadians = 6.283185307179586
)

// NewLonLatGrid builds a 2-axis geographic grid: a circular longitude axis
// in degrees and a latitude axis. This is the common layout for global
// fields such as sea surface height or temperature.
func NewLonLatGrid[F Float](lons, lats []float64, values []F, opts ...GridOption) (*Grid2D[F], error) {
	lon, err := NewCircularAxis(lons, PeriodDegrees)
	if err != nil {
		return nil, err
	}
	lat, err := NewAxis(lats)
	if err != nil {
		return nil, err
	}
	return NewGrid2D(lon, lat, values, opts...)
}

// NewLonLatTimeGrid builds a 3-axis geographic time series grid: circular
// longitude, latitude, and a temporal axis of tick counts.
func NewLonLatTimeGrid[F Float](lons, lats []float64, ticks []int64, values []F, opts ...GridOption) (*Grid3D[F, int64], error) {
	lon, err := NewCircularAxis(lons, PeriodDegrees)
	if err != nil {
		return nil, err
	}
	lat, err := NewAxis(lats)
	if err != nil {
		return nil, err
	}
	tm, err := NewTemporalAxis(ticks)
	if err != nil {
		return nil, err
	}
	return NewTemporalGrid3D(lon, lat, tm, values, opts...)
}

// NewLonLatLevelGrid builds a 3-axis geographic grid with a vertical
// level (elevation, depth or pressure) third axis.
func NewLonLatLevelGrid[F Float](lons, lats, levels []float64, values []F, opts ...GridOption) (*Grid3D[F, float64], error) {
	lon, err := NewCircularAxis(lons, PeriodDegrees)
	if err != nil {
		return nil, err
	}
	lat, err := NewAxis(lats)
	if err != nil {
		return nil, err
	}
	lvl, err := NewAxis(levels)
	if err != nil {
		return nil, err
	}
	return NewGrid3D(lon, lat, lvl, values, opts...)
}

// NewLonLatTimeLevelGrid builds the full 4-axis geographic layout:
// circular longitude, latitude, temporal ticks, and vertical level.
func NewLonLatTimeLevelGrid[F Float](lons, lats []float64, ticks []int64, levels []float64, values []F, opts ...GridOption) (*Grid4D[F, int64], error) {
	lon, err := NewCircularAxis(lons, PeriodDegrees)
	if err != nil {
		return nil, err
	}
	lat, err := NewAxis(lats)
	if err != nil {
		return nil, err
	}
	tm, err := NewTemporalAxis(ticks)
	if err != nil {
		return nil, err
	}
	lvl, err := NewAxis(levels)
	if err != nil {
		return nil, err
	}
	return NewTemporalGrid4D(lon, lat, tm, lvl, values, opts...)
}
