package models

// SensorSample is one point of the dashboard telemetry series.
type SensorSample struct {
	Time         string  `json:"time"`           // time-of-day label, e.g. "13:00"
	FridgeTempC  float64 `json:"fridge_temp_c"`  // °C
	FreezerTempC float64 `json:"freezer_temp_c"` // °C
	HumidityPct  float64 `json:"humidity_pct"`   // %
	PowerW       float64 `json:"power_w"`        // W
}
