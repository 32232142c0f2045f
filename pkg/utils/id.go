package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateRunID returns the identifier attached to one import run.
func GenerateRunID() string {
	id, err := gonanoid.Generate(characters, 12)
	if err != nil {
		return gonanoid.Must()
	}
	return id
}
