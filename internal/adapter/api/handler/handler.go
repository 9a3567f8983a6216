package handler

import (
	"greencampus/internal/usecase"
)

var (
	authHandler        *AuthHandler
	reportHandler      *ReportHandler
	triageHandler      *TriageHandler
	leaderboardHandler *LeaderboardHandler
	healthHandler      *HealthHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	reportUseCase *usecase.ReportUseCase,
	triageUseCase *usecase.TriageUseCase,
	leaderboardUseCase *usecase.LeaderboardUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	reportHandler = NewReportHandler(reportUseCase)
	triageHandler = NewTriageHandler(triageUseCase)
	leaderboardHandler = NewLeaderboardHandler(leaderboardUseCase)
	healthHandler = NewHealthHandler()
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetReportHandler() *ReportHandler {
	return reportHandler
}

func GetTriageHandler() *TriageHandler {
	return triageHandler
}

func GetLeaderboardHandler() *LeaderboardHandler {
	return leaderboardHandler
}

func GetHealthHandler() *HealthHandler {
	return healthHandler
}
