package pricing

// APIStats returns a copy of the pricing call statistics, keyed by
// region with success/failure/cache counters.
func (c *Client) APIStats() map[string]map[string]int {
	c.statsLock.RLock()
	defer c.statsLock.RUnlock()

	statsCopy := make(map[string]map[string]int)
	for region, stats := range c.stats {
		statsCopy[region] = make(map[string]int)
		for key, value := range stats {
			statsCopy[region][key] = value
		}
	}

	return statsCopy
}
