package profiles

import (
	"sync"

	"github.com/dshills/viewprofile/internal/profile"
)

// DefaultBuilder returns a builder holding the default mode table and
// interaction tables. Callers may edit the tables before building.
func DefaultBuilder() *profile.Builder {
	return profile.NewBuilder().
		Bind(profile.ViewOrtho, ProfileView, OrthoViewType).
		Bind(profile.ViewOrtho, ProfileEdit, OrthoEditType).
		Bind(profile.ViewOrtho, ProfileCrop, OrthoCropType).
		Bind(profile.ViewOrtho, ProfileAnnotate, OrthoAnnotateType).
		Bind(profile.ViewLightBox, ProfileView, LightBoxViewType).
		Bind(profile.ViewTimeSeries, ProfileView, TimeSeriesType).
		Bind(profile.ViewHistogram, ProfileView, HistogramType).
		Bind(profile.ViewPowerSpectrum, ProfileView, PlotViewType).
		Bind(profile.ViewScene3D, ProfileView, Scene3DViewType).
		Tables(OrthoViewType, orthoViewTables().Build()).
		Tables(OrthoEditType, orthoEditTables().Build()).
		Tables(OrthoCropType, orthoCropTables().Build()).
		Tables(OrthoAnnotateType, orthoAnnotateTables().Build()).
		Tables(LightBoxViewType, lightBoxTables().Build()).
		Tables(TimeSeriesType, timeSeriesTables().Build()).
		Tables(HistogramType, histogramTables().Build()).
		Tables(Scene3DViewType, scene3DTables().Build())
}

var defaultConfig = sync.OnceValue(func() *profile.Config {
	return DefaultBuilder().MustBuild()
})

// Default returns the validated default configuration. It panics if the
// built-in tables are inconsistent.
func Default() *profile.Config {
	return defaultConfig()
}
