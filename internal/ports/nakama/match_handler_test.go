package nakama

import (
	"encoding/json"
	"testing"

	"trex/internal/app"
	"trex/internal/bot"
	"trex/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	broadcastCount int
	labelUpdates   int
	lastOpCode     int64
	lastData       []byte
	opCodes        []int64
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.broadcastCount++
	md.lastOpCode = opCode
	md.lastData = append([]byte(nil), data...)
	md.opCodes = append(md.opCodes, opCode)
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labelUpdates++
	return nil
}

type testPresence struct {
	userID   string
	username string
}

func (p testPresence) GetUserId() string                 { return p.userID }
func (p testPresence) GetSessionId() string              { return "session-" + p.userID }
func (p testPresence) GetNodeId() string                 { return "node" }
func (p testPresence) GetHidden() bool                   { return false }
func (p testPresence) GetPersistence() bool              { return true }
func (p testPresence) GetUsername() string               { return p.username }
func (p testPresence) GetStatus() string                 { return "" }
func (p testPresence) GetReason() runtime.PresenceReason { return runtime.PresenceReasonUnknown }

type testMatchData struct {
	testPresence
	opCode int64
	data   []byte
}

func (d testMatchData) GetOpCode() int64      { return d.opCode }
func (d testMatchData) GetData() []byte       { return d.data }
func (d testMatchData) GetReliable() bool     { return true }
func (d testMatchData) GetReceiveTime() int64 { return 0 }

func init() {
	if err := bot.LoadIdentities("test_bot_identities.json"); err != nil {
		panic("Failed to load bot identities for tests: " + err.Error())
	}
}

func newTestState(seats [4]string) *MatchState {
	state := &MatchState{
		Seats:            seats,
		OwnerSeat:        findFirstHumanSeat(seats[:]),
		Presences:        make(map[string]runtime.Presence),
		App:              app.NewService(nil),
		Bots:             make(map[string]*bot.Agent),
		BotsEnabled:      true,
		BotMinDelay:      1,
		BotMaxDelay:      1,
		BotAutoFillDelay: 2,
	}
	for _, uid := range seats {
		if uid != "" && !isBotUserId(uid) {
			state.Presences[uid] = testPresence{userID: uid, username: uid}
		}
	}
	return state
}

func TestFindFirstHumanSeat(t *testing.T) {
	bot1 := bot.GetBotIdentity(0).UserID
	bot2 := bot.GetBotIdentity(1).UserID

	tests := []struct {
		name  string
		seats []string
		want  int
	}{
		{
			name:  "FirstHumanAfterBot",
			seats: []string{bot1, "user-1", "", ""},
			want:  1,
		},
		{
			name:  "AllBots",
			seats: []string{bot1, bot2, "", ""},
			want:  -1,
		},
		{
			name:  "AllEmpty",
			seats: []string{"", "", "", ""},
			want:  -1,
		},
		{
			name:  "FirstHumanIsSeatZero",
			seats: []string{"user-1", bot1, "user-2", ""},
			want:  0,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := findFirstHumanSeat(test.seats); got != test.want {
				t.Fatalf("findFirstHumanSeat() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestShouldTerminateNoHumans(t *testing.T) {
	bot1 := bot.GetBotIdentity(0).UserID
	bot2 := bot.GetBotIdentity(1).UserID

	tests := []struct {
		name  string
		seats []string
		want  bool
	}{
		{
			name:  "BotsOnly",
			seats: []string{bot1, bot2, "", ""},
			want:  true,
		},
		{
			name:  "HumansPresent",
			seats: []string{bot1, "user-1", "", ""},
			want:  false,
		},
		{
			name:  "AllEmpty",
			seats: []string{"", "", "", ""},
			want:  true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := shouldTerminateNoHumans(test.seats); got != test.want {
				t.Fatalf("shouldTerminateNoHumans() = %t, want %t", got, test.want)
			}
		})
	}
}

func TestMatchLabelMarshal(t *testing.T) {
	payload, err := json.Marshal(MatchLabel{Game: "trex", Open: 3, Phase: "lobby"})
	if err != nil {
		t.Fatalf("Failed to marshal label: %v", err)
	}
	want := `{"game":"trex","open":3,"phase":"lobby"}`
	if string(payload) != want {
		t.Fatalf("label = %s, want %s", payload, want)
	}
}

func TestProcessBotsAddsBotsForSoloHuman(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState([4]string{"user-1", "", "", ""})
	state.LastSinglePlayerTick = 8
	state.Tick = 10

	handler.processBots(state, dispatcher, noopLogger{})

	botCount := 0
	for _, seat := range state.Seats {
		if isBotUserId(seat) {
			botCount++
		}
	}
	if botCount != 3 {
		t.Fatalf("Expected 3 bots, got %d", botCount)
	}
	if state.GetOpenSeatsCount() != 0 {
		t.Fatalf("Expected 0 open seats after auto-fill, got %d", state.GetOpenSeatsCount())
	}
	if state.LastSinglePlayerTick != 0 {
		t.Fatalf("Expected auto-fill timer reset, got %d", state.LastSinglePlayerTick)
	}
	if dispatcher.broadcastCount == 0 || dispatcher.labelUpdates == 0 {
		t.Fatalf("Expected lobby broadcast and label update after auto-fill")
	}
	if len(state.Bots) != 3 {
		t.Fatalf("Expected 3 agents, got %d", len(state.Bots))
	}
}

func TestStartMatchRejectsNonOwner(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState([4]string{"user-1", "user-2", "", ""})

	msg := testMatchData{testPresence: testPresence{userID: "user-2"}, opCode: OpStartMatch}
	handler.handleStartMatch(state, dispatcher, noopLogger{}, msg)

	if state.Game != nil {
		t.Fatalf("non-owner start request must not create a match")
	}
}

func TestStartMatchFillsSeatsAndDeals(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState([4]string{"user-1", "", "", ""})

	msg := testMatchData{testPresence: testPresence{userID: "user-1"}, opCode: OpStartMatch}
	handler.handleStartMatch(state, dispatcher, noopLogger{}, msg)

	if state.Game == nil {
		t.Fatalf("owner start request must create a match")
	}
	if state.GetOpenSeatsCount() != 0 {
		t.Fatalf("all seats should be filled, %d open", state.GetOpenSeatsCount())
	}
	if state.Game.Phase != domain.PhaseSelecting {
		t.Fatalf("phase = %s, want selecting", state.Game.Phase)
	}

	sawRoundStarted := false
	handDeals := 0
	for _, op := range dispatcher.opCodes {
		switch op {
		case OpRoundStarted:
			sawRoundStarted = true
		case OpHandDealt:
			handDeals++
		}
	}
	if !sawRoundStarted {
		t.Fatalf("round_started was not broadcast")
	}
	// Only the human's private deal reaches the dispatcher; bot deals have no
	// presence and must not leak as broadcasts.
	if handDeals != 1 {
		t.Fatalf("hand deals dispatched = %d, want 1", handDeals)
	}
}

func TestRejectedPlaySendsErrorToSender(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState([4]string{"user-1", "", "", ""})

	start := testMatchData{testPresence: testPresence{userID: "user-1"}, opCode: OpStartMatch}
	handler.handleStartMatch(state, dispatcher, noopLogger{}, start)

	// A card play during contract selection is always rejected.
	body, _ := json.Marshal(PlayCardRequest{Card: domain.Card{Suit: domain.Clubs, Rank: domain.Two}})
	play := testMatchData{testPresence: testPresence{userID: "user-1"}, opCode: OpPlayCard, data: body}
	handler.handlePlayCard(state, dispatcher, noopLogger{}, play)

	if dispatcher.lastOpCode != OpMatchError {
		t.Fatalf("last opcode = %d, want %d", dispatcher.lastOpCode, OpMatchError)
	}
	var errEvent MatchErrorEvent
	if err := json.Unmarshal(dispatcher.lastData, &errEvent); err != nil {
		t.Fatalf("failed to unmarshal error event: %v", err)
	}
	if errEvent.Code != 400 || errEvent.Message == "" {
		t.Fatalf("unexpected error event: %+v", errEvent)
	}
}

// Drives a full match through the handler: the human plays its first legal
// action whenever it is on turn, the bots act through processBots ticks.
func TestMatchRunsToCompletionWithBots(t *testing.T) {
	handler := &matchHandler{}
	dispatcher := &mockDispatcher{}
	state := newTestState([4]string{"user-1", "", "", ""})

	start := testMatchData{testPresence: testPresence{userID: "user-1"}, opCode: OpStartMatch}
	handler.handleStartMatch(state, dispatcher, noopLogger{}, start)
	if state.Game == nil {
		t.Fatalf("match did not start")
	}

	game := state.Game
	for ticks := int64(0); state.Game != nil; ticks++ {
		if ticks > 20000 {
			t.Fatalf("match did not complete, phase %s", game.Phase)
		}
		state.Tick = ticks

		seat := game.Turn()
		if state.Seats[seat] == "user-1" {
			actions := state.App.LegalActions(game, seat)
			if len(actions) == 0 {
				t.Fatalf("human on turn with no legal actions in phase %s", game.Phase)
			}
			events, err := state.App.Submit(game, seat, actions[0])
			if err != nil {
				t.Fatalf("human submit error: %v", err)
			}
			handler.dispatchEvents(state, dispatcher, noopLogger{}, events)
			continue
		}

		handler.processBots(state, dispatcher, noopLogger{})
	}

	if !game.Complete() {
		t.Fatalf("phase = %s, want complete", game.Phase)
	}

	sawMatchEnded := false
	for _, op := range dispatcher.opCodes {
		if op == OpMatchEnded {
			sawMatchEnded = true
		}
	}
	if !sawMatchEnded {
		t.Fatalf("match_ended was not broadcast")
	}
}
