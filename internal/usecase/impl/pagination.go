package impl

import "coffeeshop/config"

// pageLimits normalises client supplied pagination.
type pageLimits struct {
	defaultLimit int
	maxLimit     int
}

func newPageLimits(cfg *config.Config) pageLimits {
	limits := pageLimits{defaultLimit: 10, maxLimit: 100}
	if cfg != nil && cfg.Pagination != nil {
		if cfg.Pagination.DefaultLimit > 0 {
			limits.defaultLimit = cfg.Pagination.DefaultLimit
		}
		if cfg.Pagination.MaxLimit > 0 {
			limits.maxLimit = cfg.Pagination.MaxLimit
		}
	}

	return limits
}

// normalize returns a non-negative offset and a limit within (0, maxLimit].
func (p pageLimits) normalize(offset, limit int) (int, int) {
	if offset < 0 {
		offset = 0
	}

	switch {
	case limit <= 0:
		limit = p.defaultLimit
	case limit > p.maxLimit:
		limit = p.maxLimit
	}

	return offset, limit
}
