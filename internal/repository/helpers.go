package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// timeLayout is fixed width so created_at columns sort correctly as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// formatTime stores t in UTC. A zero time is replaced with the current time.
func formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(timeLayout)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// scanPayload reads a single JSON payload column into dst, mapping a missing
// row to ErrNotFound.
func scanPayload(row *sql.Row, what string, dst any) error {
	var payload string
	if err := row.Scan(&payload); err != nil {
		if err == sql.ErrNoRows {
			return fmt.Errorf("%s: %w", what, ErrNotFound)
		}
		return fmt.Errorf("scanning %s: %w", what, err)
	}
	if err := json.Unmarshal([]byte(payload), dst); err != nil {
		return fmt.Errorf("decoding %s: %w", what, err)
	}
	return nil
}

// scanPayloads decodes every row's payload column with decode.
func scanPayloads(rows *sql.Rows, what string, decode func(data []byte) error) error {
	defer rows.Close()
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return fmt.Errorf("scanning %s: %w", what, err)
		}
		if err := decode([]byte(payload)); err != nil {
			return fmt.Errorf("decoding %s: %w", what, err)
		}
	}
	return rows.Err()
}
