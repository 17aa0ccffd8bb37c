package history

import "quizcli/internal/session"

// Stats aggregates session history for the stats command.
type Stats struct {
	Sessions          int
	TotalQuestions    int
	TotalCorrect      int
	AveragePercentage int
	BestPercentage    int
	WorstPercentage   int
	TimedOut          int
}

// Summarize computes aggregate statistics over results.
func Summarize(results []session.Result) Stats {
	stats := Stats{Sessions: len(results)}
	if len(results) == 0 {
		return stats
	}
	stats.WorstPercentage = 100
	sum := 0
	for _, result := range results {
		stats.TotalQuestions += result.TotalQuestions
		stats.TotalCorrect += result.CorrectCount
		sum += result.Percentage
		if result.Percentage > stats.BestPercentage {
			stats.BestPercentage = result.Percentage
		}
		if result.Percentage < stats.WorstPercentage {
			stats.WorstPercentage = result.Percentage
		}
		if result.TimedOut {
			stats.TimedOut++
		}
	}
	stats.AveragePercentage = (sum + len(results)/2) / len(results)
	return stats
}
