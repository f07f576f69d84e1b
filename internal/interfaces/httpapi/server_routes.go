package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("GET /v1/matches", RequireIdentity(http.HandlerFunc(handler.ListMatches)))
	mux.Handle("POST /v1/matches", RequireAdmin(http.HandlerFunc(handler.CreateMatch)))
	mux.Handle("DELETE /v1/matches/{matchID}", RequireAdmin(http.HandlerFunc(handler.DeleteMatch)))
	mux.Handle("POST /v1/matches/{matchID}/finish", RequireAdmin(http.HandlerFunc(handler.FinishMatch)))
	mux.Handle("GET /v1/matches/{matchID}/roster", RequireIdentity(http.HandlerFunc(handler.GetRoster)))
	mux.Handle("POST /v1/matches/{matchID}/registrations", RequireIdentity(http.HandlerFunc(handler.RegisterPlayer)))
	mux.Handle("DELETE /v1/matches/{matchID}/registrations/me", RequireIdentity(http.HandlerFunc(handler.WithdrawSelf)))
	mux.Handle("GET /v1/matches/{matchID}/summary", RequireIdentity(http.HandlerFunc(handler.GetMatchSummary)))
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("GET /v1/matches/{matchID}/teams", RequireIdentity(http.HandlerFunc(handler.GetTeams)))
	mux.Handle("PUT /v1/matches/{matchID}/teams", RequireAdmin(http.HandlerFunc(handler.SaveTeams)))
	mux.Handle("POST /v1/matches/{matchID}/teams/draw", RequireAdmin(http.HandlerFunc(handler.DrawTeams)))
	mux.Handle("POST /v1/matches/{matchID}/teams/unlock", RequireAdmin(http.HandlerFunc(handler.UnlockTeams)))
}

func registerVoteRoutes(mux *http.ServeMux, handler *Handler) {
	mux.Handle("POST /v1/matches/{matchID}/votes", RequireIdentity(http.HandlerFunc(handler.SubmitVote)))
	mux.Handle("GET /v1/matches/{matchID}/votes/pending", RequireIdentity(http.HandlerFunc(handler.GetMyPendingVotes)))
	mux.Handle("GET /v1/matches/{matchID}/voting-status", RequireIdentity(http.HandlerFunc(handler.GetVotingStatus)))
	mux.Handle("POST /v1/matches/{matchID}/voting-status/{playerID}/force-complete", RequireAdmin(http.HandlerFunc(handler.ForceCompleteVotes)))
}
