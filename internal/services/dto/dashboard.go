package dto

// StatCard is one dashboard tile.
type StatCard struct {
	Metric      string `json:"metric"`
	Value       int64  `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}
