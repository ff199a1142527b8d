package store

// Saved search queries.
const (
	searchColumns = `id, name, query, site, postal_code, radius_miles, max_price,
			max_results, enabled, last_run_at, created_at, updated_at`

	queryInsertSearch = `
		INSERT INTO saved_searches (name, query, site, postal_code, radius_miles,
			max_price, max_results, enabled)
		VALUES (@name, @query, @site, @postal_code, @radius_miles,
			@max_price, @max_results, @enabled)
		RETURNING id, created_at, updated_at`

	queryGetSearch = `
		SELECT ` + searchColumns + `
		FROM saved_searches
		WHERE id = $1`

	queryListSearchesAll = `
		SELECT ` + searchColumns + `
		FROM saved_searches
		ORDER BY created_at DESC`

	queryListSearchesEnabled = `
		SELECT ` + searchColumns + `
		FROM saved_searches
		WHERE enabled = true
		ORDER BY created_at DESC`

	queryUpdateSearch = `
		UPDATE saved_searches SET
			name         = @name,
			query        = @query,
			site         = @site,
			postal_code  = @postal_code,
			radius_miles = @radius_miles,
			max_price    = @max_price,
			max_results  = @max_results,
			enabled      = @enabled,
			updated_at   = now()
		WHERE id = @id
		RETURNING updated_at`

	queryDeleteSearch = `DELETE FROM saved_searches WHERE id = $1`

	queryUpdateSearchLastRun = `
		UPDATE saved_searches SET last_run_at = $2 WHERE id = $1`
)

// Search run queries.
const (
	queryInsertSearchRun = `
		INSERT INTO search_runs (search_id)
		VALUES ($1)
		RETURNING id`

	queryCompleteSearchRun = `
		UPDATE search_runs SET
			completed_at = now(),
			status       = $2,
			error_text   = $3,
			listings     = $4,
			deals        = $5
		WHERE id = $1`

	queryListSearchRuns = `
		SELECT id, search_id, started_at, completed_at, status,
			COALESCE(error_text, ''), listings, deals
		FROM search_runs
		WHERE search_id = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryRecoverStaleSearchRuns = `
		UPDATE search_runs SET
			completed_at = now(),
			status       = 'failed',
			error_text   = 'recovered: run did not complete'
		WHERE status = 'running'
			AND started_at < $1`
)

// Deal queries.
const (
	queryUpsertDeal = `
		INSERT INTO deals (search_id, search_term, source, source_id, verdict,
			demand_rank, profit_estimate, listing, evaluation, evaluated_at)
		VALUES (NULLIF(@search_id, '')::uuid, @search_term, @source, @source_id, @verdict,
			@demand_rank, @profit_estimate, @listing, @evaluation, @evaluated_at)
		ON CONFLICT (source, source_id) DO UPDATE SET
			search_id       = EXCLUDED.search_id,
			search_term     = EXCLUDED.search_term,
			verdict         = EXCLUDED.verdict,
			demand_rank     = EXCLUDED.demand_rank,
			profit_estimate = EXCLUDED.profit_estimate,
			listing         = EXCLUDED.listing,
			evaluation      = EXCLUDED.evaluation,
			evaluated_at    = EXCLUDED.evaluated_at
		RETURNING id, notified`

	queryListUnnotifiedDeals = baseDealsSelect + `
		WHERE notified = false AND verdict = 'profitable'
		ORDER BY ` + defaultOrderBy + `
		LIMIT $1`

	queryMarkDealsNotified = `
		UPDATE deals SET notified = true, notified_at = now()
		WHERE id = ANY($1::uuid[])`
)

// Scheduler lock queries.
const (
	queryAcquireSchedulerLock = `
		INSERT INTO scheduler_locks (job_name, lock_holder, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_name) DO UPDATE
			SET locked_at   = now(),
				lock_holder = EXCLUDED.lock_holder,
				expires_at  = EXCLUDED.expires_at
			WHERE scheduler_locks.expires_at < now()
		RETURNING job_name`

	queryReleaseSchedulerLock = `
		DELETE FROM scheduler_locks WHERE job_name = $1 AND lock_holder = $2`
)
