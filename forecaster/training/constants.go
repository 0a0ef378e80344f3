/*
 *     Copyright 2024 The Medalcast Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package training

const (
	// ModeFull fits the medal vector models on country histories.
	ModeFull = "full"

	// ModeSimple fits total medal models on games year and season.
	ModeSimple = "simple"
)

// Feature names in vector order.
const (
	FeatureAvgGold        = "avg_gold_per_olympics"
	FeatureAvgSilver      = "avg_silver_per_olympics"
	FeatureAvgBronze      = "avg_bronze_per_olympics"
	FeatureOlympics       = "olympics_participated"
	FeatureTotalMedals    = "total_medals"
	FeatureGoldRatio      = "gold_ratio"
	FeatureRecentTrend    = "recent_trend_factor"
	FeatureMedalDiversity = "medal_diversity_score"
	FeatureGameYear       = "game_year"
	FeatureSeasonEncoded  = "season_encoded"
)

// Target names in vector order.
const (
	TargetGold        = "target_gold"
	TargetSilver      = "target_silver"
	TargetBronze      = "target_bronze"
	TargetTotalMedals = "target_total_medals"
)

// TargetDefinition describes what the full mode scores measure.
const TargetDefinition = "trend adjusted historical average per olympics, scores measure how well models reproduce this heuristic and not real next games outcomes"

var (
	// FeatureNames are the full mode features.
	FeatureNames = []string{
		FeatureAvgGold,
		FeatureAvgSilver,
		FeatureAvgBronze,
		FeatureOlympics,
		FeatureTotalMedals,
		FeatureGoldRatio,
		FeatureRecentTrend,
		FeatureMedalDiversity,
	}

	// TargetNames are the full mode targets.
	TargetNames = []string{TargetGold, TargetSilver, TargetBronze}

	// SimpleFeatureNames are the simple mode features.
	SimpleFeatureNames = []string{FeatureGameYear, FeatureSeasonEncoded}

	// SimpleTargetNames are the simple mode targets.
	SimpleTargetNames = []string{TargetTotalMedals}
)
