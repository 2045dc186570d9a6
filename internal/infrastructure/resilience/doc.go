/*
Package resilience provides a circuit breaker for dependencies that may fail
repeatedly, such as the preference store.

# Usage

	breaker := resilience.New("preferences", resilience.Settings{
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
	})

	err := breaker.Do(func() error {
		return store.Set(ctx, key, value)
	})

# States

- Closed: calls pass through
- Open: calls fail immediately with ErrCircuitOpen
- Half-Open: MaxRequests trial calls decide whether to close again

	Closed --[failures]-> Open --[timeout]-> Half-Open --[successes]-> Closed
	                                           |
	                                    [failure]
	                                           |
	                                           v
	                                         Open
*/
package resilience
