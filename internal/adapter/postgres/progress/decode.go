package progress

import (
	"encoding/json"
	"fmt"

	"github.com/willyuhot/ehexam/internal/domain"
)

func decodeJSON(options []byte, dstOptions *map[string]string, coreWords []byte, dstWords *[]domain.CoreWord) error {
	if err := json.Unmarshal(options, dstOptions); err != nil {
		return fmt.Errorf("decode options: %w", err)
	}
	if err := json.Unmarshal(coreWords, dstWords); err != nil {
		return fmt.Errorf("decode core words: %w", err)
	}
	return nil
}
