package postgres

// =============================================================================
// User Queries
// =============================================================================

const (
	SQLSelectUserByPlatform = `
		SELECT u.user_id::text, u.username, l.platform, l.platform_id, u.created_at
		FROM user_platform_links l
		JOIN users u ON u.user_id = l.user_id
		WHERE l.platform = $1 AND l.platform_id = $2
	`

	SQLSelectUserByID = `
		SELECT u.user_id::text, u.username, COALESCE(l.platform, ''), COALESCE(l.platform_id, ''), u.created_at
		FROM users u
		LEFT JOIN user_platform_links l ON l.user_id = u.user_id
		WHERE u.user_id = $1
		ORDER BY l.created_at
		LIMIT 1
	`

	SQLInsertUser = `
		INSERT INTO users (user_id, username, created_at, updated_at)
		VALUES ($1, $2, $3, $3)
	`

	SQLInsertPlatformLink = `
		INSERT INTO user_platform_links (user_id, platform, platform_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (platform, platform_id) DO NOTHING
	`

	SQLUpdateUsername = `
		UPDATE users SET username = $2, updated_at = NOW()
		WHERE user_id = $1 AND username <> $2
	`

	SQLInsertResources = `
		INSERT INTO user_resources (user_id) VALUES ($1)
		ON CONFLICT (user_id) DO NOTHING
	`
)

// =============================================================================
// Garden Queries
// =============================================================================

const treeColumns = `tree_id::text, user_id::text, variety, planted_at, last_watered_at, last_fertilized_at,
		water_applications, fertilizer_applications, harvested, harvested_at,
		growth_checkpoint_at, growth_day_units, growth_partial_units`

const (
	SQLInsertTree = `
		INSERT INTO trees (tree_id, user_id, variety, planted_at)
		VALUES ($1, $2, $3, $4)
	`

	SQLSelectTree = `SELECT ` + treeColumns + ` FROM trees WHERE tree_id = $1`

	SQLSelectTreeForUpdate = SQLSelectTree + ` FOR UPDATE`

	SQLSelectTreesByUser = `
		SELECT ` + treeColumns + `
		FROM trees
		WHERE user_id = $1 AND ($2 OR NOT harvested)
		ORDER BY planted_at DESC, tree_id
	`

	// Care updates succeed only while the previous application is at or before the cutoff
	SQLApplyWater = `
		UPDATE trees
		SET last_watered_at = $2, water_applications = water_applications + 1,
		    growth_checkpoint_at = $4, growth_day_units = $5, growth_partial_units = $6
		WHERE tree_id = $1 AND NOT harvested
		  AND (last_watered_at IS NULL OR last_watered_at <= $3)
		RETURNING ` + treeColumns

	SQLApplyFertilize = `
		UPDATE trees
		SET last_fertilized_at = $2, fertilizer_applications = fertilizer_applications + 1,
		    growth_checkpoint_at = $4, growth_day_units = $5, growth_partial_units = $6
		WHERE tree_id = $1 AND NOT harvested
		  AND (last_fertilized_at IS NULL OR last_fertilized_at <= $3)
		RETURNING ` + treeColumns

	SQLMarkHarvested = `
		UPDATE trees SET harvested = TRUE, harvested_at = $2
		WHERE tree_id = $1 AND NOT harvested
	`
)

// =============================================================================
// Resource and Activity Queries
// =============================================================================

const (
	SQLSelectResources = `
		SELECT water, fertilizer, coin, experience
		FROM user_resources
		WHERE user_id = $1
	`

	SQLAddResources = `
		INSERT INTO user_resources (user_id, water, fertilizer, coin, experience)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			water = user_resources.water + EXCLUDED.water,
			fertilizer = user_resources.fertilizer + EXCLUDED.fertilizer,
			coin = user_resources.coin + EXCLUDED.coin,
			experience = user_resources.experience + EXCLUDED.experience,
			updated_at = NOW()
		RETURNING water, fertilizer, coin, experience
	`

	SQLInsertActivity = `
		INSERT INTO activity_log (user_id, tree_id, action, water, fertilizer, coin, experience, quality, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`

	SQLSelectActivity = `
		SELECT id, user_id::text, COALESCE(tree_id::text, ''), action, water, fertilizer, coin, experience,
			COALESCE(quality, ''), created_at
		FROM activity_log
		WHERE user_id = $1 AND ($2::uuid IS NULL OR tree_id = $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3
	`
)

// =============================================================================
// Check-in Queries
// =============================================================================

const (
	SQLSelectStreak = `
		SELECT user_id::text, last_checkin_date, consecutive_days, total_days
		FROM streaks
		WHERE user_id = $1
	`

	SQLSelectStreakForUpdate = SQLSelectStreak + ` FOR UPDATE`

	SQLInsertStreak = `
		INSERT INTO streaks (user_id, last_checkin_date, consecutive_days, total_days)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO NOTHING
	`

	// The previous date guards against a concurrent check-in moving the streak first
	SQLUpdateStreak = `
		UPDATE streaks
		SET last_checkin_date = $2, consecutive_days = $3, total_days = $4, updated_at = NOW()
		WHERE user_id = $1 AND last_checkin_date = $5 AND last_checkin_date < $2
	`

	SQLInsertCheckin = `
		INSERT INTO checkins (user_id, checkin_date, consecutive_days, water, fertilizer, coin, experience, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, checkin_date) DO NOTHING
	`

	SQLSelectCheckinDates = `
		SELECT checkin_date
		FROM checkins
		WHERE user_id = $1 AND checkin_date BETWEEN $2 AND $3
		ORDER BY checkin_date
	`

	SQLSelectCheckins = `
		SELECT user_id::text, checkin_date, consecutive_days, water, fertilizer, coin, experience, created_at
		FROM checkins
		WHERE user_id = $1
		ORDER BY checkin_date DESC
		LIMIT $2 OFFSET $3
	`

	SQLClaimMilestone = `
		INSERT INTO streak_milestones (user_id, threshold, claimed_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, threshold) DO NOTHING
	`

	SQLSelectMilestones = `
		SELECT threshold, claimed_at
		FROM streak_milestones
		WHERE user_id = $1
	`
)

// =============================================================================
// Error Message Constants
// =============================================================================

const (
	ErrMsgInvalidUserID       = "invalid user id"
	ErrMsgInvalidTreeID       = "invalid tree id"
	ErrMsgBeginTx             = "failed to begin transaction"
	ErrMsgQueryUser           = "failed to query user"
	ErrMsgInsertUser          = "failed to insert user"
	ErrMsgQueryTree           = "failed to query tree"
	ErrMsgInsertTree          = "failed to insert tree"
	ErrMsgApplyCare           = "failed to apply care"
	ErrMsgMarkHarvested       = "failed to mark tree harvested"
	ErrMsgQueryResources      = "failed to query resources"
	ErrMsgAddResources        = "failed to add resources"
	ErrMsgAppendActivity      = "failed to append activity"
	ErrMsgQueryActivity       = "failed to query activity"
	ErrMsgQueryStreak         = "failed to query streak"
	ErrMsgSaveStreak          = "failed to save streak"
	ErrMsgInsertCheckin       = "failed to insert check-in"
	ErrMsgQueryCheckins       = "failed to query check-ins"
	ErrMsgClaimMilestone      = "failed to claim milestone"
	ErrMsgQueryMilestones     = "failed to query milestones"
	ErrMsgUnsupportedCareKind = "unsupported care action"
)
