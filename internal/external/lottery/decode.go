package lottery

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strconv"
	"time"

	"LuckyStore/internal/domain/product"
	"LuckyStore/internal/external/upstream"
)

// The lottery API returns special numbers as sibling keys
// special_number_1, special_number_2, ... next to the product fields.
var specialKey = regexp.MustCompile(`^special_number_(\d+)$`)

type lotteryPayload struct {
	LotteryID   upstream.String `json:"lottery_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Price       upstream.Float  `json:"price"`
	Stock       upstream.Float  `json:"stock"`
	Reserved    upstream.Float  `json:"reserved"`
	Digits      upstream.Float  `json:"digits"`
	IsActive    bool            `json:"is_active"`
	UpdatedAt   string          `json:"updated_at"`
}

type specialPayload struct {
	Number    upstream.Float `json:"number"`
	HasWinner bool           `json:"has_winner"`
}

// DecodeProduct parses a lottery API document, collecting every
// special_number_N key sorted by N.
func DecodeProduct(raw []byte) (product.Product, error) {
	var body lotteryPayload
	if err := json.Unmarshal(raw, &body); err != nil {
		return product.Product{}, fmt.Errorf("decode lottery: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return product.Product{}, fmt.Errorf("decode lottery fields: %w", err)
	}

	specials := make([]product.SpecialNumber, 0)
	for key, value := range fields {
		m := specialKey.FindStringSubmatch(key)
		if m == nil {
			continue
		}
		id, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		var sp specialPayload
		if err := json.Unmarshal(value, &sp); err != nil {
			slog.Warn("skip malformed special number", "key", key, "error", err)
			continue
		}
		specials = append(specials, product.SpecialNumber{
			ID:        id,
			Number:    int(sp.Number),
			HasWinner: sp.HasWinner,
		})
	}
	sort.Slice(specials, func(i, j int) bool { return specials[i].ID < specials[j].ID })

	p := product.Product{
		ID:             string(body.LotteryID),
		Title:          body.Title,
		Description:    body.Description,
		Image:          body.Image,
		Price:          float64(body.Price),
		Stock:          int(body.Stock),
		Reserved:       int(body.Reserved),
		Digits:         int(body.Digits),
		IsActive:       body.IsActive,
		SpecialNumbers: specials,
	}
	if t, err := time.Parse(time.RFC3339, body.UpdatedAt); err == nil {
		p.UpdatedAt = t
	}
	return p, nil
}
