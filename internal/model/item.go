package model

// Sentinel is the default group. It always exists and receives orphaned items.
const Sentinel = "Not specified"

// Item is one labelable unit. Name never changes after load; Group is only
// changed by the label store.
type Item struct {
	Name  string `json:"name"`
	Group string `json:"group"`
}

// Record is one exported row: an item name and its assigned group.
type Record struct {
	Name  string `json:"name" yaml:"name" toml:"name"`
	Group string `json:"group" yaml:"group" toml:"group"`
}

// Receipt describes what a sink wrote.
type Receipt struct {
	Location string
	Bytes    int64
}
