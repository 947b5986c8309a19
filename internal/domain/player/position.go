package player

import "github.com/riskibarqy/league-registry/internal/domain/team"

type Position string

const (
	PositionPitcher          Position = "Pitcher"
	PositionCatcher          Position = "Catcher"
	PositionFirstBase        Position = "First Base"
	PositionSecondBase       Position = "Second Base"
	PositionShortstop        Position = "Shortstop"
	PositionThirdBase        Position = "Third Base"
	PositionLeftField        Position = "Left Field"
	PositionCenterField      Position = "Center Field"
	PositionRightField       Position = "Right Field"
	PositionDesignatedHitter Position = "Designated Hitter"

	PositionGoalkeeper Position = "Goalkeeper"
	PositionDefender   Position = "Defender"
	PositionMidfielder Position = "Midfielder"
	PositionForward    Position = "Forward"

	PositionPointGuard    Position = "Point Guard"
	PositionShootingGuard Position = "Shooting Guard"
	PositionSmallForward  Position = "Small Forward"
	PositionPowerForward  Position = "Power Forward"
	PositionCenter        Position = "Center"

	PositionGoaltender Position = "Goaltender"
	PositionDefenseman Position = "Defenseman"
	PositionLeftWing   Position = "Left Wing"
	PositionRightWing  Position = "Right Wing"

	PositionQuarterback       Position = "Quarterback"
	PositionRunningBack       Position = "Running Back"
	PositionWideReceiver      Position = "Wide Receiver"
	PositionTightEnd          Position = "Tight End"
	PositionOffensiveLineman  Position = "Offensive Lineman"
	PositionDefensiveLineman  Position = "Defensive Lineman"
	PositionLinebacker        Position = "Linebacker"
	PositionCornerback        Position = "Cornerback"
	PositionSafety            Position = "Safety"
	PositionKicker            Position = "Kicker"
	PositionPunter            Position = "Punter"
)

var positionsBySport = map[team.Sport][]Position{
	team.SportBaseball: {
		PositionPitcher, PositionCatcher, PositionFirstBase, PositionSecondBase, PositionShortstop,
		PositionThirdBase, PositionLeftField, PositionCenterField, PositionRightField, PositionDesignatedHitter,
	},
	team.SportSoccer: {
		PositionGoalkeeper, PositionDefender, PositionMidfielder, PositionForward,
	},
	team.SportBasketball: {
		PositionPointGuard, PositionShootingGuard, PositionSmallForward, PositionPowerForward, PositionCenter,
	},
	team.SportHockey: {
		PositionGoaltender, PositionDefenseman, PositionCenter, PositionLeftWing, PositionRightWing,
	},
	team.SportFootball: {
		PositionQuarterback, PositionRunningBack, PositionWideReceiver, PositionTightEnd, PositionOffensiveLineman,
		PositionDefensiveLineman, PositionLinebacker, PositionCornerback, PositionSafety, PositionKicker, PositionPunter,
	},
}

// PositionsForSport returns the positions a roster of the given sport accepts.
func PositionsForSport(sport team.Sport) []Position {
	return append([]Position(nil), positionsBySport[sport]...)
}

func ValidPosition(sport team.Sport, position Position) bool {
	for _, item := range positionsBySport[sport] {
		if item == position {
			return true
		}
	}
	return false
}

// KnownPosition reports whether position belongs to any sport. Used for
// listing filters where no team is in scope.
func KnownPosition(position Position) bool {
	for _, positions := range positionsBySport {
		for _, item := range positions {
			if item == position {
				return true
			}
		}
	}
	return false
}
