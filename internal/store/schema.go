package store

const schema = `
CREATE TABLE IF NOT EXISTS wallets (
    id          uuid PRIMARY KEY,
    address     text NOT NULL UNIQUE,
    private_key text NOT NULL,
    status      text NOT NULL CHECK (status IN ('active', 'inactive')),
    created_at  timestamptz NOT NULL DEFAULT now(),
    updated_at  timestamptz NOT NULL DEFAULT now(),
    deleted_at  timestamptz
);

CREATE TABLE IF NOT EXISTS transactions (
    id           uuid PRIMARY KEY,
    tx_hash      text UNIQUE,
    asset        text NOT NULL,
    from_address text NOT NULL,
    to_address   text NOT NULL,
    amount       numeric NOT NULL,
    gas_price    bigint,
    gas_limit    bigint,
    nonce        bigint,
    status       text NOT NULL CHECK (status IN ('pending', 'completed', 'failed')),
    created_at   timestamptz NOT NULL DEFAULT now(),
    updated_at   timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_transactions_from_address ON transactions (from_address, created_at DESC);
`
