// Package amiibo materializes catalog entries as emulated figurine records:
// a directory per figure holding a flag file, a JSON descriptor and an
// optional thumbnail, laid out the way emuiibo expects.
package amiibo

import (
	"errors"
	"strconv"
)

// idLength is the number of hex digits in a full record identifier
// (head + tail as published by the API).
const idLength = 16

var ErrInvalidID = errors.New("invalid amiibo id")

// ID is the decoded record identifier. The hex string splits into five
// fixed-width fields.
type ID struct {
	GameCharacterID  uint16
	CharacterVariant uint8
	FigureType       uint8
	ModelNumber      uint16
	Series           uint8
}

// ParseID slices a 16-hex-digit identifier into its fields. The character id
// is stored byte-swapped in the descriptor, which is handled here so callers
// never see the raw order.
func ParseID(s string) (ID, error) {
	if len(s) < idLength {
		return ID{}, ErrInvalidID
	}

	gameCharacter, err := hexField(s[0:4])
	if err != nil {
		return ID{}, err
	}
	variant, err := hexField(s[4:6])
	if err != nil {
		return ID{}, err
	}
	figureType, err := hexField(s[6:8])
	if err != nil {
		return ID{}, err
	}
	model, err := hexField(s[8:12])
	if err != nil {
		return ID{}, err
	}
	series, err := hexField(s[12:14])
	if err != nil {
		return ID{}, err
	}

	return ID{
		GameCharacterID:  swap16(uint16(gameCharacter)),
		CharacterVariant: uint8(variant),
		FigureType:       uint8(figureType),
		ModelNumber:      uint16(model),
		Series:           uint8(series),
	}, nil
}

func hexField(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, ErrInvalidID
	}
	return v, nil
}

// swap16 swaps the bytes of a 16-bit value. The descriptor stores the game
// character id little-endian while the printed id is big-endian.
func swap16(v uint16) uint16 {
	return v<<8 | v>>8
}
