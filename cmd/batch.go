package cmd

// BatchResult is what every batch job returns: how many items it saw
// and how many failed. One item failing never fails the batch.
type BatchResult struct {
	Total  int
	Errors int
}
