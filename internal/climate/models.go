package climate

import (
	"time"
)

// Parameter names a NASA POWER daily variable.
type Parameter string

const (
	ParamTempMax       Parameter = "T2M_MAX"
	ParamTempMin       Parameter = "T2M_MIN"
	ParamTemp          Parameter = "T2M"
	ParamWind10m       Parameter = "WS10M"
	ParamWind50m       Parameter = "WS50M"
	ParamGust10mMax    Parameter = "WS10M_MAX"
	ParamPrecipitation Parameter = "PRECTOTCORR"
	ParamRelHumidity   Parameter = "RH2M"
	ParamSpecHumidity  Parameter = "QV2M"
	ParamDewPoint      Parameter = "T2MDEW"
	ParamClearness     Parameter = "ALLSKY_KT"
	ParamSolarAllSky   Parameter = "ALLSKY_SFC_SW_DWN"
	ParamSolarClearSky Parameter = "CLRSKY_SFC_SW_DWN"
	ParamSoilTemp      Parameter = "TS"
	ParamSurfacePress  Parameter = "PS"
)

// Parameters is the fixed set every cleaned DailyRecord carries, in request order.
var Parameters = []Parameter{
	ParamTempMax, ParamTempMin, ParamTemp,
	ParamWind10m, ParamWind50m, ParamGust10mMax,
	ParamPrecipitation, ParamRelHumidity, ParamSpecHumidity, ParamDewPoint,
	ParamClearness, ParamSolarAllSky, ParamSolarClearSky,
	ParamSoilTemp, ParamSurfacePress,
}

// DailyRecord is one calendar day of climate values.
// Date is always midnight UTC; the time zone carries no meaning.
type DailyRecord struct {
	Date   time.Time
	Values map[Parameter]float64
}

// Value returns the value for p, or 0 if absent.
func (r DailyRecord) Value(p Parameter) float64 {
	return r.Values[p]
}

// Series is a date-ordered sequence of complete daily records.
type Series []DailyRecord

// RawDay is a provider row before cleaning. Missing values are nil.
type RawDay struct {
	Date   time.Time
	Values map[Parameter]*float64
}

// YearRange is an inclusive span of calendar years.
type YearRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Query identifies the point and calendar day a report is built for.
type Query struct {
	Lat   float64
	Lon   float64
	Fecha string
}

// Stats holds the aggregate values computed over a matched day set.
type Stats struct {
	TempMaxMean        float64 `json:"temp_max_promedio"`
	TempMinMean        float64 `json:"temp_min_promedio"`
	TempMean           float64 `json:"temp_promedio"`
	Wind10mMean        float64 `json:"viento_10m_promedio"`
	Wind50mMean        float64 `json:"viento_50m_promedio"`
	GustMax            float64 `json:"viento_rafaga_max"`
	RainDays           int     `json:"dias_lluvia"`
	TotalDays          int     `json:"total_dias"`
	HeatIndexMean      float64 `json:"heat_index_promedio"`
	RelHumidityMean    float64 `json:"humedad_relativa_promedio"`
	SpecHumidityMean   float64 `json:"humedad_absoluta_promedio"`
	DewPointMean       float64 `json:"rocío_promedio"`
	SurfacePressMean   float64 `json:"presion_superficie_promedio"`
	SoilTempMean       float64 `json:"temperatura_suelo_promedio"`
	SolarAllSkyMean    float64 `json:"radiacion_solar"`
	SolarClearSkyMean  float64 `json:"radiacion_solar_despejado"`
	ClearnessIndexMean float64 `json:"indice_claridad"`
}

// RainRatio is the share of matched days that were rain days.
func (s Stats) RainRatio() float64 {
	return float64(s.RainDays) / float64(s.TotalDays)
}

// RadiationRatio is the all-sky to clear-sky radiation ratio.
func (s Stats) RadiationRatio() float64 {
	return s.SolarAllSkyMean / s.SolarClearSkyMean
}

// Report is the response body of a successful climate query.
type Report struct {
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lon"`
	Fecha       string   `json:"fecha_consulta"`
	Stats       Stats    `json:"estadisticas"`
	Extremes    []string `json:"condiciones_extremas"`
	Predictions []string `json:"predicciones"`
}
