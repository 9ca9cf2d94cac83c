package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"backend/repository"
	"backend/utils"
)

// ReportService renders the weekly trend summary into a plain-text email.
type ReportService struct {
	trends *TrendService
	energy *EnergyService
}

func NewReportService(repo repository.MetricRepository) *ReportService {
	return &ReportService{
		trends: NewTrendService(repo),
		energy: NewEnergyService(repo),
	}
}

// SendWeeklyReport emails the last two weeks of trends plus yesterday's
// energy balance. Empty trend sets still produce a (short) report; the user
// asked for one.
func (s *ReportService) SendWeeklyReport(ctx context.Context, userID uint, email string) error {
	results, err := s.trends.AnalyzeTrends(ctx, userID, 14)
	if err != nil {
		return err
	}
	yesterday := time.Now().AddDate(0, 0, -1)
	balance, err := s.energy.Balance(ctx, userID, yesterday)
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("Your weekly fitness summary\n\n")
	if len(results) == 0 {
		sb.WriteString("Not enough logged data this week for trend analysis. Keep logging!\n")
	}
	for _, r := range results {
		sb.WriteString("- " + r.Insight + "\n")
	}
	sb.WriteString(fmt.Sprintf(
		"\nYesterday's energy balance: %+.0f kcal (intake %.0f, burned %.0f).\n",
		balance.Balance, balance.IntakeKcal, balance.BurnedKcal))

	return utils.SendEmail(email, "Your weekly fitness summary", sb.String())
}
