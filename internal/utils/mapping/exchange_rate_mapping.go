package mapping

import (
	"github.com/twopi/moneycore/internal/core/domain"
	"github.com/twopi/moneycore/internal/dto"
)

// ToDomainRateSnapshot converts a wire rate snapshot to the domain form.
func ToDomainRateSnapshot(r dto.RateSnapshotResponse) domain.RateSnapshot {
	snapshot := make(domain.RateSnapshot, len(r.Data))
	for code, entry := range r.Data {
		snapshot[code] = domain.ExchangeRate{Code: entry.Code, Value: entry.Value}
	}
	return snapshot
}
