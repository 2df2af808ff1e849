package ingest

import (
	"fmt"

	"github.com/ukpabik/mid-diff/internal/domain"
	"github.com/ukpabik/mid-diff/internal/providers/riot"
	"github.com/ukpabik/mid-diff/internal/store/schema"
)

// ProjectParticipant narrows a full match payload down to the rows cached
// for one player: the stat projection and the item build. The payload
// carries all ten participants; only the entry matching the given puuid is
// kept.
func ProjectParticipant(payload *riot.MatchPayload, puuid string) (*schema.Match, *schema.PlayerBuild, error) {
	var participant *riot.Participant
	for i := range payload.Info.Participants {
		if payload.Info.Participants[i].PUUID == puuid {
			participant = &payload.Info.Participants[i]
			break
		}
	}
	if participant == nil {
		return nil, nil, fmt.Errorf("%w: puuid %s in match %s",
			domain.ErrParticipantNotFound, puuid, payload.Metadata.MatchID)
	}

	match := &schema.Match{
		MatchID:      payload.Metadata.MatchID,
		PUUID:        puuid,
		ChampionName: participant.ChampionName,
		ChampionID:   participant.ChampionID,
		TeamPosition: participant.TeamPosition,
		Win:          participant.Win,

		Kills:   participant.Kills,
		Deaths:  participant.Deaths,
		Assists: participant.Assists,

		GoldEarned:           participant.GoldEarned,
		GoldSpent:            participant.GoldSpent,
		TotalMinionsKilled:   participant.TotalMinionsKilled,
		NeutralMinionsKilled: participant.NeutralMinionsKilled,

		DamageDealtToChampions: participant.TotalDamageDealtToChampions,
		TotalDamageTaken:       participant.TotalDamageTaken,

		VisionScore: participant.VisionScore,
		WardsPlaced: participant.WardsPlaced,
		WardsKilled: participant.WardsKilled,

		TurretTakedowns:    participant.TurretTakedowns,
		InhibitorTakedowns: participant.InhibitorTakedowns,

		GameStartTimestamp: payload.Info.GameStartTimestamp,
		GameDuration:       payload.Info.GameDuration,
		GameMode:           payload.Info.GameMode,
		QueueID:            payload.Info.QueueID,

		CSPerMin: csPerMin(participant, payload.Info.GameDuration),
		KDA:      kda(participant),
	}

	build := &schema.PlayerBuild{
		MatchID: payload.Metadata.MatchID,
		PUUID:   puuid,
		Item0:   participant.Item0,
		Item1:   participant.Item1,
		Item2:   participant.Item2,
		Item3:   participant.Item3,
		Item4:   participant.Item4,
		Item5:   participant.Item5,
		Item6:   participant.Item6,
	}

	return match, build, nil
}

// csPerMin is total creep score (lane plus jungle) per minute of game time
func csPerMin(p *riot.Participant, gameDuration int64) float64 {
	if gameDuration <= 0 {
		return 0
	}
	cs := float64(p.TotalMinionsKilled + p.NeutralMinionsKilled)
	return cs / (float64(gameDuration) / 60.0)
}

// kda is kills plus assists over deaths, with deaths floored at one so a
// deathless game does not divide by zero
func kda(p *riot.Participant) float64 {
	deaths := p.Deaths
	if deaths < 1 {
		deaths = 1
	}
	return float64(p.Kills+p.Assists) / float64(deaths)
}
