package httpapi

import (
	"context"
	"time"

	"github.com/riskibarqy/league-registry/internal/domain/player"
	"github.com/riskibarqy/league-registry/internal/domain/schedule"
	"github.com/riskibarqy/league-registry/internal/domain/team"
	"github.com/riskibarqy/league-registry/internal/domain/user"
	"github.com/riskibarqy/league-registry/internal/usecase"
)

type signUpRequest struct {
	Username  string `json:"username" validate:"required,min=3,max=64"`
	Email     string `json:"email" validate:"required,email,max=254"`
	Password  string `json:"password" validate:"required,min=6,max=72"`
	Role      string `json:"role"`
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
}

type signInRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type createTeamRequest struct {
	Name            string `json:"name" validate:"required,max=120"`
	City            string `json:"city" validate:"required,max=120"`
	Stadium         string `json:"stadium" validate:"required,max=120"`
	Sport           string `json:"sport" validate:"required"`
	StadiumPhoto    string `json:"stadium_photo" validate:"omitempty,max=2048"`
	TeamType        string `json:"team_type"`
	StadiumLocation string `json:"stadium_location" validate:"omitempty,max=255"`
	StadiumCapacity int    `json:"stadium_capacity" validate:"min=0"`
	ManagerID       string `json:"manager_id"`
}

type updateTeamRequest struct {
	Name            *string `json:"name" validate:"omitempty,min=1,max=120"`
	City            *string `json:"city" validate:"omitempty,min=1,max=120"`
	Stadium         *string `json:"stadium" validate:"omitempty,min=1,max=120"`
	Sport           *string `json:"sport"`
	StadiumPhoto    *string `json:"stadium_photo" validate:"omitempty,max=2048"`
	TeamType        *string `json:"team_type"`
	StadiumLocation *string `json:"stadium_location" validate:"omitempty,max=255"`
	StadiumCapacity *int    `json:"stadium_capacity" validate:"omitempty,min=0"`
	ManagerID       *string `json:"manager_id"`
}

func (r updateTeamRequest) toInput() usecase.UpdateTeamInput {
	return usecase.UpdateTeamInput{
		Name:            r.Name,
		City:            r.City,
		Stadium:         r.Stadium,
		Sport:           r.Sport,
		StadiumPhoto:    r.StadiumPhoto,
		TeamType:        r.TeamType,
		StadiumLocation: r.StadiumLocation,
		StadiumCapacity: r.StadiumCapacity,
		ManagerID:       r.ManagerID,
	}
}

type addPlayerRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Hometown  string `json:"hometown" validate:"omitempty,max=120"`
	Number    *int   `json:"player_number" validate:"required,min=0,max=999"`
	Position  string `json:"position" validate:"required"`
	Status    string `json:"status"`
	Headshot  string `json:"headshot" validate:"omitempty,max=2048"`
}

func (r addPlayerRequest) toInput() usecase.AddPlayerInput {
	number := 0
	if r.Number != nil {
		number = *r.Number
	}
	return usecase.AddPlayerInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Hometown:  r.Hometown,
		Number:    number,
		Position:  r.Position,
		Status:    r.Status,
		Headshot:  r.Headshot,
	}
}

type createPlayerRequest struct {
	addPlayerRequest
	TeamID string `json:"team" validate:"required"`
}

type updatePlayerRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=100"`
	Hometown  *string `json:"hometown" validate:"omitempty,max=120"`
	Number    *int    `json:"player_number" validate:"omitempty,min=0,max=999"`
	Position  *string `json:"position"`
	Status    *string `json:"status"`
	Headshot  *string `json:"headshot" validate:"omitempty,max=2048"`
}

func (r updatePlayerRequest) toInput() usecase.UpdatePlayerInput {
	return usecase.UpdatePlayerInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Hometown:  r.Hometown,
		Number:    r.Number,
		Position:  r.Position,
		Status:    r.Status,
		Headshot:  r.Headshot,
	}
}

// scheduleRequest leaves required-field checks to the scheduler so the
// validation order stays in one place.
type scheduleRequest struct {
	HomeTeamID   string `json:"home_team"`
	AwayTeamID   string `json:"away_team"`
	Date         string `json:"date"`
	Location     string `json:"location"`
	Season       string `json:"season"`
	Status       string `json:"status"`
	GameDuration int    `json:"game_duration" validate:"min=0,max=1440"`
	TimeZone     string `json:"time_zone" validate:"omitempty,max=64"`
}

func (r scheduleRequest) toInput() usecase.ScheduleInput {
	return usecase.ScheduleInput{
		HomeTeamID:   r.HomeTeamID,
		AwayTeamID:   r.AwayTeamID,
		Date:         r.Date,
		Location:     r.Location,
		Season:       r.Season,
		Status:       r.Status,
		GameDuration: r.GameDuration,
		TimeZone:     r.TimeZone,
	}
}

type userDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

type userSummaryDTO struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

type authDTO struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresAt time.Time `json:"expires_at"`
	User      userDTO   `json:"user"`
}

type teamDTO struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	City            string    `json:"city"`
	Stadium         string    `json:"stadium"`
	Sport           string    `json:"sport"`
	ManagerID       *string   `json:"manager"`
	Players         []string  `json:"players"`
	Schedules       []string  `json:"schedules"`
	StadiumPhoto    string    `json:"stadium_photo,omitempty"`
	TeamType        string    `json:"team_type,omitempty"`
	StadiumLocation string    `json:"stadium_location,omitempty"`
	StadiumCapacity int       `json:"stadium_capacity,omitempty"`
	CreatedBy       string    `json:"created_by,omitempty"`
	UpdatedBy       string    `json:"updated_by,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type teamSummaryDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Stadium string `json:"stadium"`
	Sport   string `json:"sport"`
}

type teamDetailDTO struct {
	Team      teamDTO             `json:"team"`
	Manager   *userSummaryDTO     `json:"manager"`
	Players   []playerDTO         `json:"players"`
	Schedules []scheduleDetailDTO `json:"schedules"`
}

type playerDTO struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Hometown  string    `json:"hometown,omitempty"`
	Number    int       `json:"player_number"`
	Position  string    `json:"position"`
	TeamID    *string   `json:"team"`
	Status    string    `json:"status"`
	Headshot  string    `json:"headshot,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type playerDetailDTO struct {
	Player playerDTO       `json:"player"`
	Team   *teamSummaryDTO `json:"team"`
}

type scheduleDTO struct {
	ID           string    `json:"id"`
	HomeTeamID   string    `json:"home_team"`
	AwayTeamID   string    `json:"away_team"`
	Date         time.Time `json:"date"`
	Arena        string    `json:"arena"`
	City         string    `json:"city"`
	Status       string    `json:"status"`
	Season       string    `json:"season"`
	Location     string    `json:"location"`
	GameDuration int       `json:"game_duration,omitempty"`
	TimeZone     string    `json:"time_zone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type scheduleDetailDTO struct {
	Schedule scheduleDTO     `json:"schedule"`
	HomeTeam *teamSummaryDTO `json:"home_team"`
	AwayTeam *teamSummaryDTO `json:"away_team"`
}

type paginationDTO struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type pageDTO[T any] struct {
	Items      []T           `json:"items"`
	Pagination paginationDTO `json:"pagination"`
}

func userToDTO(v user.User) userDTO {
	return userDTO{
		ID:        v.ID,
		Username:  v.Username,
		Email:     v.Email,
		Role:      string(v.Role),
		FirstName: v.FirstName,
		LastName:  v.LastName,
		CreatedAt: v.CreatedAt,
	}
}

func authToDTO(v usecase.AuthResult) authDTO {
	return authDTO{
		Token:     v.Token.Token,
		TokenType: "Bearer",
		ExpiresAt: v.Token.ExpiresAt,
		User:      userToDTO(v.User),
	}
}

func userSummaryToDTO(v *user.Summary) *userSummaryDTO {
	if v == nil {
		return nil
	}
	return &userSummaryDTO{
		ID:        v.ID,
		Username:  v.Username,
		FirstName: v.FirstName,
		LastName:  v.LastName,
		Role:      string(v.Role),
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:              v.ID,
		Name:            v.Name,
		City:            v.City,
		Stadium:         v.Stadium,
		Sport:           string(v.Sport),
		ManagerID:       optionalID(v.ManagerID),
		Players:         nonNilStrings(v.PlayerIDs),
		Schedules:       nonNilStrings(v.ScheduleIDs),
		StadiumPhoto:    v.StadiumPhoto,
		TeamType:        string(v.TeamType),
		StadiumLocation: v.StadiumLocation,
		StadiumCapacity: v.StadiumCapacity,
		CreatedBy:       v.CreatedBy,
		UpdatedBy:       v.UpdatedBy,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}

func teamSummaryToDTO(v *team.Summary) *teamSummaryDTO {
	if v == nil {
		return nil
	}
	return &teamSummaryDTO{
		ID:      v.ID,
		Name:    v.Name,
		City:    v.City,
		Stadium: v.Stadium,
		Sport:   string(v.Sport),
	}
}

func teamDetailToDTO(ctx context.Context, v usecase.TeamDetails) teamDetailDTO {
	_, span := startSpan(ctx, "httpapi.teamDetailToDTO")
	defer span.End()

	players := make([]playerDTO, 0, len(v.Players))
	for _, item := range v.Players {
		players = append(players, playerToDTO(item))
	}
	schedules := make([]scheduleDetailDTO, 0, len(v.Schedules))
	for _, item := range v.Schedules {
		schedules = append(schedules, scheduleDetailToDTO(item))
	}

	return teamDetailDTO{
		Team:      teamToDTO(v.Team),
		Manager:   userSummaryToDTO(v.Manager),
		Players:   players,
		Schedules: schedules,
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:        v.ID,
		FirstName: v.FirstName,
		LastName:  v.LastName,
		Hometown:  v.Hometown,
		Number:    v.Number,
		Position:  string(v.Position),
		TeamID:    optionalID(v.TeamID),
		Status:    string(v.Status),
		Headshot:  v.Headshot,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func playerDetailToDTO(v usecase.PlayerDetails) playerDetailDTO {
	return playerDetailDTO{
		Player: playerToDTO(v.Player),
		Team:   teamSummaryToDTO(v.Team),
	}
}

func scheduleToDTO(v schedule.Schedule) scheduleDTO {
	return scheduleDTO{
		ID:           v.ID,
		HomeTeamID:   v.HomeTeamID,
		AwayTeamID:   v.AwayTeamID,
		Date:         v.Date,
		Arena:        v.Arena,
		City:         v.City,
		Status:       string(v.Status),
		Season:       string(v.Season),
		Location:     string(v.Location),
		GameDuration: v.GameDuration,
		TimeZone:     v.TimeZone,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func scheduleDetailToDTO(v usecase.ScheduleDetails) scheduleDetailDTO {
	return scheduleDetailDTO{
		Schedule: scheduleToDTO(v.Schedule),
		HomeTeam: teamSummaryToDTO(v.HomeTeam),
		AwayTeam: teamSummaryToDTO(v.AwayTeam),
	}
}

func paginationToDTO(v usecase.PageInfo) paginationDTO {
	return paginationDTO{
		Page:       v.Page,
		Limit:      v.Limit,
		Total:      v.Total,
		TotalPages: v.TotalPages,
	}
}

func optionalID(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func nonNilStrings(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func schedulesToDTO(items []usecase.ScheduleDetails) []scheduleDetailDTO {
	out := make([]scheduleDetailDTO, 0, len(items))
	for _, item := range items {
		out = append(out, scheduleDetailToDTO(item))
	}
	return out
}
