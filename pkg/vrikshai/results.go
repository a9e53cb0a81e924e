package vrikshai

// CareSummary is the quick care overview attached to an identification.
type CareSummary struct {
	WaterFrequency string `json:"water_frequency"`
	Sunlight       string `json:"sunlight"`
	SoilType       string `json:"soil_type"`
	Difficulty     string `json:"difficulty"`
}

// DarshanResult is the structured plant identification the model returns.
type DarshanResult struct {
	CommonName     string      `json:"common_name"`
	ScientificName string      `json:"scientific_name"`
	SanskritName   *string     `json:"sanskrit_name,omitempty"`
	Family         string      `json:"family"`
	Confidence     float64     `json:"confidence"`
	CareSummary    CareSummary `json:"care_summary"`
	TraditionalUse *string     `json:"traditional_use,omitempty"`
	FunFact        string      `json:"fun_fact"`
}

// Treatment groups the remediation steps of a diagnosis.
type Treatment struct {
	Immediate []string `json:"immediate"`
	Ongoing   []string `json:"ongoing"`
	Products  []string `json:"products"`
}

// ChikitsaResult is the structured health diagnosis the model returns.
// Severity is constrained to healthy, warning, or critical.
type ChikitsaResult struct {
	Diagnosis       string    `json:"diagnosis"`
	Severity        string    `json:"severity"`
	Confidence      float64   `json:"confidence"`
	Causes          []string  `json:"causes"`
	Treatment       Treatment `json:"treatment"`
	Prevention      []string  `json:"prevention"`
	RecoveryTime    string    `json:"recovery_time"`
	WarningSigns    []string  `json:"warning_signs"`
	AyurvedicWisdom *string   `json:"ayurvedic_wisdom,omitempty"`
}

// WateringInfo details the watering portion of a care schedule.
type WateringInfo struct {
	FrequencyDays      int      `json:"frequency_days"`
	Amount             string   `json:"amount"`
	Method             string   `json:"method"`
	SeasonalAdjustment string   `json:"seasonal_adjustment"`
	SignsToWater       []string `json:"signs_to_water"`
}

// LightInfo details the light portion of a care schedule.
type LightInfo struct {
	HoursPerDay  string `json:"hours_per_day"`
	Type         string `json:"type"`
	Placement    string `json:"placement"`
	SeasonalNote string `json:"seasonal_note"`
}

// FertilizingInfo details the fertilizing portion of a care schedule.
type FertilizingInfo struct {
	Frequency    string `json:"frequency"`
	Type         string `json:"type"`
	Dilution     string `json:"dilution"`
	SeasonalNote string `json:"seasonal_note"`
}

// MaintenanceInfo details recurring upkeep tasks.
type MaintenanceInfo struct {
	Pruning   string `json:"pruning"`
	Repotting string `json:"repotting"`
	Cleaning  string `json:"cleaning"`
	PestCheck string `json:"pest_check"`
}

// SevaSchedule is the structured care schedule the model returns.
type SevaSchedule struct {
	Watering     WateringInfo    `json:"watering"`
	Light        LightInfo       `json:"light"`
	Fertilizing  FertilizingInfo `json:"fertilizing"`
	Maintenance  MaintenanceInfo `json:"maintenance"`
	SeasonalTips []string        `json:"seasonal_tips"`
	VaidyaWisdom *string         `json:"vaidya_wisdom,omitempty"`
}
