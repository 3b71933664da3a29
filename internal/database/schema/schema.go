package schema

// SchemaSQL contains the full database schema initialization script
const SchemaSQL = `
-- Players Registry
-- Player identity is owned by the quiz platform; this table mirrors the
-- subset needed for display and referential integrity.
CREATE TABLE IF NOT EXISTS players (
    player_id VARCHAR(64) PRIMARY KEY,
    username VARCHAR(100) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

-- Badge Progress
-- One row per (player, difficulty). lifetime_earned_count is the cycle
-- counter; official_badge_count only moves on admin award.
CREATE TABLE IF NOT EXISTS badge_progress (
    player_id VARCHAR(64) NOT NULL REFERENCES players(player_id) ON DELETE CASCADE,
    difficulty VARCHAR(16) NOT NULL CHECK (difficulty IN ('easy', 'average', 'difficult')),
    lifetime_earned_count INTEGER NOT NULL DEFAULT 0 CHECK (lifetime_earned_count >= 0),
    official_badge_count INTEGER NOT NULL DEFAULT 0 CHECK (official_badge_count >= 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (player_id, difficulty)
);

-- Rewards
-- Minted once per completed badge cycle. State moves one way:
-- unclaimed -> requested -> claimed (awards may skip requested).
CREATE TABLE IF NOT EXISTS rewards (
    reward_id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    player_id VARCHAR(64) NOT NULL REFERENCES players(player_id) ON DELETE CASCADE,
    difficulty VARCHAR(16) NOT NULL CHECK (difficulty IN ('easy', 'average', 'difficult')),
    badge_number INTEGER NOT NULL,
    state VARCHAR(16) NOT NULL DEFAULT 'unclaimed' CHECK (state IN ('unclaimed', 'requested', 'claimed')),
    earned_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    requested_date TIMESTAMPTZ,
    claimed_date TIMESTAMPTZ,
    awarded_by_id VARCHAR(64),
    awarded_by_name VARCHAR(100)
);

CREATE INDEX IF NOT EXISTS idx_rewards_player_state ON rewards (player_id, state);
CREATE INDEX IF NOT EXISTS idx_rewards_player_difficulty ON rewards (player_id, difficulty);

-- Star Accounts
CREATE TABLE IF NOT EXISTS star_accounts (
    player_id VARCHAR(64) PRIMARY KEY REFERENCES players(player_id) ON DELETE CASCADE,
    total_stars INTEGER NOT NULL DEFAULT 0 CHECK (total_stars >= 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_star_accounts_total ON star_accounts (total_stars DESC, created_at ASC);

-- Milestones
-- Append-only tier crossings. The unique constraint is the idempotency
-- guarantee: one milestone per (player, tier), ever.
CREATE TABLE IF NOT EXISTS milestones (
    id BIGSERIAL PRIMARY KEY,
    player_id VARCHAR(64) NOT NULL REFERENCES players(player_id) ON DELETE CASCADE,
    tier_key VARCHAR(32) NOT NULL,
    stars_at_achievement INTEGER NOT NULL,
    achieved_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (player_id, tier_key)
);

CREATE INDEX IF NOT EXISTS idx_milestones_player ON milestones (player_id, achieved_at DESC);

-- Audit Log
-- Append-only trail of state-changing operations.
CREATE TABLE IF NOT EXISTS audit_log (
    id BIGSERIAL PRIMARY KEY,
    action VARCHAR(64) NOT NULL,
    actor_id VARCHAR(64) NOT NULL,
    actor_name VARCHAR(100),
    target_type VARCHAR(32) NOT NULL,
    target_id VARCHAR(64),
    target_label VARCHAR(100),
    changes_before JSONB,
    changes_after JSONB,
    details JSONB,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_audit_log_target ON audit_log (target_type, target_id, created_at DESC);
CREATE INDEX IF NOT EXISTS idx_audit_log_action ON audit_log (action, created_at DESC);
`
