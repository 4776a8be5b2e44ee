package queries

import (
	"context"
	"log/slog"
	"strings"

	"workorders/internal/core/ports"
)

// GetLogisticsAdviceQueryHandler projects the day's orders and forwards them
// to the advisor. Advisor failures never reach the caller.
type GetLogisticsAdviceQueryHandler struct {
	orders  WorkOrderReader
	advisor ports.LogisticsAdvisor
	logger  *slog.Logger
}

func NewGetLogisticsAdviceQueryHandler(
	orders WorkOrderReader,
	advisor ports.LogisticsAdvisor,
	logger *slog.Logger,
) GetLogisticsAdviceQueryHandler {
	return GetLogisticsAdviceQueryHandler{
		orders:  orders,
		advisor: advisor,
		logger:  logger.With("component", "logistics_advice"),
	}
}

// Handle returns the advisor text, or a fallback message when the advisor
// errors or answers with blank text. Only a failure to read the orders is
// returned as an error.
func (h GetLogisticsAdviceQueryHandler) Handle(
	ctx context.Context,
	query GetLogisticsAdviceQuery,
) (LogisticsAdviceResponse, error) {
	if err := query.Validate(); err != nil {
		return LogisticsAdviceResponse{}, err
	}

	orders, err := h.orders.GetByDate(ctx, query.Date())
	if err != nil {
		return LogisticsAdviceResponse{}, err
	}

	filter := query.TypeID()
	loads := make([]ports.OrderLoad, 0, len(orders))
	for _, o := range orders {
		if filter != nil && !o.TypeID().IsEqual(*filter) {
			continue
		}
		addresses := make([]string, 0, o.TaskCount())
		for _, t := range o.Tasks() {
			addresses = append(addresses, t.Address())
		}
		loads = append(loads, ports.OrderLoad{
			Number:    o.Number().String(),
			Addresses: addresses,
			Load:      o.TaskCount(),
		})
	}

	text, err := h.advisor.Advise(ctx, loads)
	if err != nil {
		h.logger.WarnContext(ctx, "logistics advisor failed",
			"date", query.Date().String(),
			"orders", len(loads),
			"error", err)
		return LogisticsAdviceResponse{Text: AdviceConnectionFailed, Fallback: true}, nil
	}

	if strings.TrimSpace(text) == "" {
		return LogisticsAdviceResponse{Text: AdviceUnavailable, Fallback: true}, nil
	}

	return LogisticsAdviceResponse{Text: text}, nil
}
