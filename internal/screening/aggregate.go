// Package screening runs candidate batches against jobs and reduces the
// outcomes into screening-level statistics.
package screening

import (
	"math"

	"hirescreen/internal/types"
)

// DefaultQualifyingThreshold is the minimum score counting as qualified
const DefaultQualifyingThreshold = 50

// distribution band boundaries
const (
	bandExcellent = 80
	bandGood      = 60
	bandAverage   = 40
)

// Aggregate reduces single-job score results into screening statistics.
// Invalid sentinel results (score 0) count toward the total but are
// excluded from averages, top score, and the distribution. An empty batch
// yields all-zero statistics.
func Aggregate(results []*types.ScoreResult, threshold int) *types.ScreeningStatistics {
	if threshold <= 0 {
		threshold = DefaultQualifyingThreshold
	}

	stats := &types.ScreeningStatistics{TotalCandidates: len(results)}

	var validScores []int
	for _, result := range results {
		if result == nil || !isValidScore(result) {
			continue
		}
		validScores = append(validScores, result.Score)
	}

	fillScoreStats(stats, validScores, threshold)
	return stats
}

// AggregateMulti reduces multi-job score sets, drawing each candidate's
// score from their best job and adding the per-category breakdown.
func AggregateMulti(results []*types.MultiJobResult, threshold int) *types.ScreeningStatistics {
	if threshold <= 0 {
		threshold = DefaultQualifyingThreshold
	}

	stats := &types.ScreeningStatistics{
		TotalCandidates:   len(results),
		CategoryBreakdown: make(map[string]types.CategoryStats),
	}

	var validScores []int
	categoryScores := make(map[string][]int)

	for _, result := range results {
		if result == nil || result.BestJob.Score <= 0 {
			continue
		}
		score := result.BestJob.Score
		validScores = append(validScores, score)
		category := result.BestJob.Category
		categoryScores[category] = append(categoryScores[category], score)
	}

	fillScoreStats(stats, validScores, threshold)

	for category, scores := range categoryScores {
		stats.CategoryBreakdown[category] = types.CategoryStats{
			Count:        len(scores),
			AverageScore: roundedMean(scores),
		}
	}

	return stats
}

// isValidScore distinguishes real scores from the invalid-input sentinel
func isValidScore(result *types.ScoreResult) bool {
	return result.Valid && result.Score > 0 && result.Score <= 100
}

func fillScoreStats(stats *types.ScreeningStatistics, validScores []int, threshold int) {
	stats.AverageScore = roundedMean(validScores)

	for _, score := range validScores {
		if score > stats.TopScore {
			stats.TopScore = score
		}
		if score >= threshold {
			stats.QualifiedCandidates++
		}

		switch {
		case score >= bandExcellent:
			stats.ScoreDistribution.Excellent++
		case score >= bandGood:
			stats.ScoreDistribution.Good++
		case score >= bandAverage:
			stats.ScoreDistribution.Average++
		default:
			stats.ScoreDistribution.Poor++
		}
	}
}

func roundedMean(scores []int) int {
	if len(scores) == 0 {
		return 0
	}
	sum := 0
	for _, score := range scores {
		sum += score
	}
	return int(math.Round(float64(sum) / float64(len(scores))))
}
