package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"

	"trex/internal/app"
	"trex/internal/bot"
	"trex/internal/config"
	"trex/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Seats     [4]string                   `json:"seats"`      // Array of user IDs, empty string means seat is empty
	OwnerSeat int                         `json:"owner_seat"` // Seat index of the match owner
	Tick      int64                       `json:"tick"`
	Presences map[string]runtime.Presence `json:"-"` // Map UserId -> Presence for targeted messaging
	App       *app.Service                `json:"-"`
	Game      *domain.MatchState          `json:"-"` // Current active match (nil if in lobby)

	BotsEnabled          bool                  `json:"bots_enabled"`
	BotMinDelay          int                   `json:"bot_min_delay"`       // Min seconds a bot waits
	BotMaxDelay          int                   `json:"bot_max_delay"`       // Max seconds a bot waits
	BotAutoFillDelay     int                   `json:"bot_auto_fill_delay"` // Seconds to wait before auto-filling with bots
	BotWaitUntil         int64                 `json:"bot_wait_until"`      // Tick when the bot should act
	LastSinglePlayerTick int64                 `json:"last_single_player_tick"`
	Bots                 map[string]*bot.Agent `json:"-"`

	// SavedRounds counts the rounds already persisted to storage.
	SavedRounds int `json:"saved_rounds"`
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetOccupiedSeatCount() int {
	return len(ms.Seats) - ms.GetOpenSeatsCount()
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !isBotUserId(seat) {
			count++
		}
	}
	return count
}

// isBotUserId reports whether the given user id represents a bot seat.
func isBotUserId(userId string) bool {
	return bot.IsBot(userId)
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userId := seats[seatIndex]
	return userId != "" && !isBotUserId(userId)
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userId := range seats {
		if userId != "" && !isBotUserId(userId) {
			return i
		}
	}
	return -1
}

// shouldTerminateNoHumans returns true when there are no humans in the match.
func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

type matchHandler struct{}

func newMatchHandler() runtime.Match {
	return &matchHandler{}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := bot.LoadIdentities("data/bot_identities.json"); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig("data/game_config.json"); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}
	cfg := config.GetGameConfig()

	state := &MatchState{
		Presences:        make(map[string]runtime.Presence),
		App:              app.NewService(nil),
		OwnerSeat:        -1,
		Bots:             make(map[string]*bot.Agent),
		BotsEnabled:      true,
		BotMinDelay:      1,
		BotMaxDelay:      3,
		BotAutoFillDelay: cfg.BotAutoFillDelaySeconds,
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["trex_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["trex_bot_min_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMinDelay = i
		}
	}
	if val, ok := env["trex_bot_max_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotMaxDelay = i
		}
	}
	if val, ok := env["trex_bot_auto_fill_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil {
			state.BotAutoFillDelay = i
		}
	}
	if state.BotAutoFillDelay == 0 {
		state.BotAutoFillDelay = 5
	}

	// Resume a previously saved match for this id, if one survives.
	if matchID, _ := ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string); matchID != "" {
		if saved, err := loadMatchState(ctx, nk, matchID); err != nil {
			logger.Warn("MatchInit: Ignoring saved match state: %v", err)
		} else if saved != nil && saved.Game != nil && !saved.Game.Complete() {
			state.Seats = saved.Seats
			state.OwnerSeat = saved.OwnerSeat
			state.Game = saved.Game
			state.SavedRounds = saved.Game.Cycle*domain.RoundsPerCycle + saved.Game.RoundInCycle
			for seat, uid := range state.Seats {
				if isBotUserId(uid) {
					if err := mh.seatBot(state, seat, logger); err != nil {
						logger.Error("MatchInit: Failed to reseat bot: %v", err)
					}
				}
			}
			logger.Info("MatchInit: Resumed saved match %s.", matchID)
		}
	}

	phase := "lobby"
	if state.Game != nil {
		phase = "playing"
	}
	labelBytes, err := json.Marshal(MatchLabel{Game: "trex", Open: state.GetOpenSeatsCount(), Phase: phase})
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}

	tickRate := 1
	return state, tickRate, string(labelBytes)
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Allow join if there is an empty seat OR a bot to replace (if the match hasn't started).
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		if matchState.Game == nil {
			for _, seat := range matchState.Seats {
				if isBotUserId(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "Match full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		// Assign seat: try empty seats first, then bots (if lobby).
		assigned := false
		for i, seatUserId := range matchState.Seats {
			if seatUserId == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}

		if !assigned && matchState.Game == nil {
			for i, seatUserId := range matchState.Seats {
				if isBotUserId(seatUserId) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserId, p.GetUserId(), i)
					delete(matchState.Bots, seatUserId)
					matchState.Seats[i] = p.GetUserId()
					assigned = true
					break
				}
			}
		}

		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat (empty or bot) was available.", p.GetUserId())
		}
	}

	// Ensure owner seat is assigned to a human player only.
	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
		if matchState.OwnerSeat >= 0 {
			logger.Debug("MatchJoin: Owner set to human seat %d.", matchState.OwnerSeat)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastLobby(matchState, dispatcher, logger)

	return matchState
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		for i, seatUserId := range matchState.Seats {
			if seatUserId == p.GetUserId() {
				matchState.Seats[i] = ""
				logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), i)
				break
			}
		}
	}

	matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])

	if shouldTerminateNoHumans(matchState.Seats[:]) {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastLobby(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartMatch:
			mh.handleStartMatch(matchState, dispatcher, logger, msg)
		case OpSelectContract:
			mh.handleSelectContract(matchState, dispatcher, logger, msg)
		case OpPlaceBid:
			mh.handlePlaceBid(matchState, dispatcher, logger, msg)
		case OpPlayCard:
			mh.handlePlayCard(matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(matchState, dispatcher, logger)
	}

	mh.persistOnRoundBoundary(ctx, nk, logger, matchState)

	return matchState
}

// persistOnRoundBoundary saves the match after each folded round and clears
// the document once the match ends.
func (mh *matchHandler) persistOnRoundBoundary(ctx context.Context, nk runtime.NakamaModule, logger runtime.Logger, state *MatchState) {
	matchID, _ := ctx.Value(runtime.RUNTIME_CTX_MATCH_ID).(string)
	if matchID == "" {
		return
	}

	if state.Game == nil {
		if state.SavedRounds > 0 {
			if err := deleteMatchState(ctx, nk, matchID); err != nil {
				logger.Warn("Failed to delete saved match: %v", err)
			}
			state.SavedRounds = 0
		}
		return
	}

	rounds := state.Game.Cycle*domain.RoundsPerCycle + state.Game.RoundInCycle
	if rounds == state.SavedRounds {
		return
	}
	if err := saveMatchState(ctx, nk, matchID, state); err != nil {
		logger.Error("Failed to save match state: %v", err)
		return
	}
	state.SavedRounds = rounds
}

func (mh *matchHandler) processBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// 1. Auto-fill lobby with bots when a single human has been waiting.
	if state.Game == nil {
		if state.GetHumanPlayerCount() == 1 {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
				logger.Debug("processBots: Single player detected, starting auto-fill timer.")
			}

			if state.Tick-state.LastSinglePlayerTick >= int64(state.BotAutoFillDelay) {
				added := false
				for i, seat := range state.Seats {
					if seat != "" {
						continue
					}
					if err := mh.seatBot(state, i, logger); err != nil {
						logger.Error("processBots: Failed to seat bot at %d: %v", i, err)
						continue
					}
					added = true
				}
				if added {
					mh.updateLabel(state, dispatcher, logger)
					mh.broadcastLobby(state, dispatcher, logger)
				}
				state.LastSinglePlayerTick = 0
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
		return
	}

	// 2. Handle bot turns in-game.
	if state.Game.Complete() {
		return
	}
	currentTurn := state.Game.Turn()
	currentUserID := state.Seats[currentTurn]
	if !isBotUserId(currentUserID) {
		state.BotWaitUntil = 0
		return
	}

	if state.BotWaitUntil == 0 {
		delay := rand.Intn(state.BotMaxDelay-state.BotMinDelay+1) + state.BotMinDelay
		state.BotWaitUntil = state.Tick + int64(delay)
		logger.Debug("processBots: Bot %s (seat %d) will act at tick %d (current %d)", currentUserID, currentTurn, state.BotWaitUntil, state.Tick)
	}
	if state.Tick < state.BotWaitUntil {
		return
	}
	state.BotWaitUntil = 0

	agent, exists := state.Bots[currentUserID]
	if !exists {
		logger.Error("processBots: No agent for bot %s, reseating.", currentUserID)
		if err := mh.seatBot(state, currentTurn, logger); err != nil {
			return
		}
		agent = state.Bots[state.Seats[currentTurn]]
	}

	action, err := agent.Act(state.App, state.Game)
	if err != nil {
		logger.Error("processBots: Bot %s failed to choose an action: %v", currentUserID, err)
		return
	}
	events, err := state.App.Submit(state.Game, currentTurn, action)
	if err != nil {
		logger.Error("processBots: Bot %s submitted a rejected action %+v: %v", currentUserID, action, err)
		return
	}
	mh.dispatchEvents(state, dispatcher, logger, events)
}

// seatBot fills the seat with a bot identity and a fresh agent.
func (mh *matchHandler) seatBot(state *MatchState, seat int, logger runtime.Logger) error {
	identity := bot.GetBotIdentity(seat)
	strategy, err := bot.NewBrain(bot.LevelFromDifficulty(identity.Difficulty))
	if err != nil {
		return err
	}
	state.Seats[seat] = identity.UserID
	state.Bots[identity.UserID] = &bot.Agent{
		ID:       identity.UserID,
		Name:     identity.DisplayName,
		Seat:     seat,
		Strategy: strategy,
	}
	logger.Info("processBots: Added bot %s (%s) to seat %d", identity.Username, identity.UserID, seat)
	return nil
}

func (mh *matchHandler) senderSeat(state *MatchState, userID string) int {
	for i, seatUserId := range state.Seats {
		if seatUserId == userID {
			return i
		}
	}
	return -1
}

func (mh *matchHandler) handleStartMatch(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := mh.senderSeat(state, senderID)

	logger.Info("StartMatch: Request received from %s (seat=%d, owner_seat=%d, occupied=%d)", senderID, senderSeat, state.OwnerSeat, state.GetOccupiedSeatCount())

	if senderSeat != state.OwnerSeat {
		logger.Warn("StartMatch: User %s tried to start but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		return
	}
	if state.Game != nil && !state.Game.Complete() {
		mh.sendError(state, dispatcher, logger, senderID, 409, "match already in progress")
		return
	}

	// A round engine needs all four seats occupied; fill the rest with bots.
	if state.GetOpenSeatsCount() > 0 {
		if !state.BotsEnabled {
			mh.sendError(state, dispatcher, logger, senderID, 400, "not enough players")
			return
		}
		for i, seat := range state.Seats {
			if seat == "" {
				if err := mh.seatBot(state, i, logger); err != nil {
					logger.Error("StartMatch: Failed to seat bot: %v", err)
					return
				}
			}
		}
		mh.broadcastLobby(state, dispatcher, logger)
	}

	cfg := config.GetGameConfig()
	params := domain.MatchParams{
		Mode:          domain.SelectionMode(cfg.SelectionMode),
		Cycles:        cfg.Cycles,
		FirstSelector: cfg.FirstSelector,
	}
	for name, idx := range cfg.OpeningLeads {
		c, ok := domain.ContractFromString(name)
		if !ok || idx < 0 || idx >= 52 {
			logger.Warn("StartMatch: Ignoring invalid opening lead %s=%d", name, idx)
			continue
		}
		if params.OpeningLeads == nil {
			params.OpeningLeads = make(map[domain.Contract]domain.Card)
		}
		params.OpeningLeads[c] = domain.CardFromIndex(idx)
	}

	game, events, err := state.App.StartMatch(params)
	if err != nil {
		logger.Error("StartMatch: Failed to start: %v", err)
		return
	}
	state.Game = game

	mh.updateLabel(state, dispatcher, logger)
	mh.dispatchEvents(state, dispatcher, logger, events)

	logger.Info("StartMatch: Match started.")
}

func (mh *matchHandler) handleSelectContract(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := mh.senderSeat(state, senderID)
	if state.Game == nil {
		logger.Warn("handleSelectContract: Match not started.")
		return
	}

	request := &SelectContractRequest{}
	if err := json.Unmarshal(msg.GetData(), request); err != nil {
		logger.Error("handleSelectContract: Invalid request from %s: %v", senderID, err)
		return
	}
	contract, ok := domain.ContractFromString(request.Contract)
	if !ok {
		mh.sendError(state, dispatcher, logger, senderID, 400, "unknown contract: "+request.Contract)
		return
	}

	events, err := state.App.Submit(state.Game, senderSeat, app.SelectContract(contract))
	if err != nil {
		logger.Warn("handleSelectContract: User %s (seat %d) rejected: %v", senderID, senderSeat, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}
	mh.dispatchEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handlePlaceBid(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := mh.senderSeat(state, senderID)
	if state.Game == nil {
		logger.Warn("handlePlaceBid: Match not started.")
		return
	}

	request := &PlaceBidRequest{}
	if err := json.Unmarshal(msg.GetData(), request); err != nil {
		logger.Error("handlePlaceBid: Invalid request from %s: %v", senderID, err)
		return
	}

	action := app.BidValue(request.Bid)
	if request.Pass {
		action = app.Pass()
	}
	events, err := state.App.Submit(state.Game, senderSeat, action)
	if err != nil {
		logger.Warn("handlePlaceBid: User %s (seat %d) rejected: %v", senderID, senderSeat, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}
	mh.dispatchEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) handlePlayCard(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := mh.senderSeat(state, senderID)
	if state.Game == nil {
		logger.Warn("handlePlayCard: Match not started.")
		return
	}

	request := &PlayCardRequest{}
	if err := json.Unmarshal(msg.GetData(), request); err != nil {
		logger.Error("handlePlayCard: Invalid request from %s: %v", senderID, err)
		return
	}

	events, err := state.App.Submit(state.Game, senderSeat, app.PlayCard(request.Card))
	if err != nil {
		logger.Warn("handlePlayCard: User %s (seat %d) failed to play %s: %v", senderID, senderSeat, request.Card, err)
		mh.sendError(state, dispatcher, logger, senderID, 400, err.Error())
		return
	}
	mh.dispatchEvents(state, dispatcher, logger, events)
}

// dispatchEvents feeds every event to the bot agents, then broadcasts it to
// connected clients.
func (mh *matchHandler) dispatchEvents(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	for _, ev := range events {
		for _, agent := range state.Bots {
			agent.OnGameEvent(ev)
		}
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
}

func opCodeFor(kind app.EventKind) (int64, bool) {
	switch kind {
	case app.EventRoundStarted:
		return OpRoundStarted, true
	case app.EventHandDealt:
		return OpHandDealt, true
	case app.EventBidPlaced:
		return OpBidPlaced, true
	case app.EventContractSelected:
		return OpContractSelected, true
	case app.EventCardPlayed:
		return OpCardPlayed, true
	case app.EventTrickWon:
		return OpTrickWon, true
	case app.EventRoundScored:
		return OpRoundScored, true
	case app.EventCycleEnded:
		return OpCycleEnded, true
	case app.EventMatchEnded:
		return OpMatchEnded, true
	default:
		return 0, false
	}
}

// broadcastEvent converts one engine event to its wire form and dispatches it.
func (mh *matchHandler) broadcastEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	opCode, ok := opCodeFor(ev.Kind)
	if !ok {
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	bytes, err := json.Marshal(ev.Payload)
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	// Resolve seat recipients to presences (default to broadcast).
	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, seat := range ev.Recipients {
			if seat < 0 || seat >= len(state.Seats) {
				continue
			}
			if p, ok := state.Presences[state.Seats[seat]]; ok {
				recipients = append(recipients, p)
			}
		}

		// If the intended recipients are all disconnected or bots, we MUST
		// NOT fall through to a broadcast.
		if len(recipients) == 0 {
			return
		}
	}

	dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)

	if ev.Kind == app.EventMatchEnded {
		state.Game = nil
		mh.updateLabel(state, dispatcher, logger)
	}
}

// sendError sends a MatchErrorEvent to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	bytes, err := json.Marshal(MatchErrorEvent{Code: code, Message: message})
	if err != nil {
		logger.Error("Failed to marshal MatchErrorEvent: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	dispatcher.BroadcastMessage(OpMatchError, bytes, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) broadcastLobby(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	var playerStates []PlayerState
	for i, userId := range state.Seats {
		if userId == "" {
			continue
		}

		displayName := userId
		if p, exists := state.Presences[userId]; exists {
			displayName = p.GetUsername()
		} else if name := bot.GetBotDisplayName(userId); name != "" {
			displayName = name
		}

		playerStates = append(playerStates, PlayerState{
			UserID:      userId,
			Seat:        i,
			IsOwner:     i == state.OwnerSeat,
			IsBot:       isBotUserId(userId),
			DisplayName: displayName,
		})
	}

	bytes, err := json.Marshal(LobbySnapshot{
		Seats:     state.Seats[:],
		OwnerSeat: state.OwnerSeat,
		Tick:      state.Tick,
		Players:   playerStates,
	})
	if err != nil {
		logger.Error("Failed to marshal lobby snapshot: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpPlayerJoined, bytes, nil, nil, true)
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	phase := "lobby"
	if state.Game != nil {
		phase = "playing"
	}

	labelBytes, err := json.Marshal(MatchLabel{Game: "trex", Open: state.GetOpenSeatsCount(), Phase: phase})
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(string(labelBytes)); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, reason int) interface{} {
	logger.Debug("MatchTerminate: Match terminated for reason %d", reason)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
