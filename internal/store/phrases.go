package store

import "fmt"

// AddPhrase records an input the grammar did not recognize. Duplicates are
// silently ignored.
func (db *DB) AddPhrase(text string) error {
	_, err := db.Exec(
		"INSERT INTO phrases (text) VALUES (?) ON CONFLICT(text) DO NOTHING",
		text,
	)
	if err != nil {
		return fmt.Errorf("inserting phrase: %w", err)
	}
	return nil
}

// ListPhrases returns all recorded unrecognized phrases, oldest first.
func (db *DB) ListPhrases() ([]string, error) {
	rows, err := db.Query("SELECT text FROM phrases ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("querying phrases: %w", err)
	}
	defer rows.Close()

	var phrases []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("scanning phrase: %w", err)
		}
		phrases = append(phrases, text)
	}

	return phrases, rows.Err()
}

// ClearPhrases empties the recorded set.
func (db *DB) ClearPhrases() error {
	_, err := db.Exec("DELETE FROM phrases")
	return err
}
