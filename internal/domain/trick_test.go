package domain

import (
	"errors"
	"testing"
)

func TestTrickWinner(t *testing.T) {
	tests := []struct {
		name   string
		plays  []Play
		winner int
	}{
		{
			name: "highest of led suit wins",
			plays: []Play{
				{Seat: 0, Card: Card{Hearts, Nine}},
				{Seat: 1, Card: Card{Hearts, Queen}},
				{Seat: 2, Card: Card{Hearts, Jack}},
				{Seat: 3, Card: Card{Hearts, Two}},
			},
			winner: 1,
		},
		{
			name: "off-suit ace never wins",
			plays: []Play{
				{Seat: 2, Card: Card{Clubs, Five}},
				{Seat: 3, Card: Card{Spades, Ace}},
				{Seat: 0, Card: Card{Clubs, Seven}},
				{Seat: 1, Card: Card{Diamonds, Ace}},
			},
			winner: 0,
		},
		{
			name: "leader wins when nobody follows",
			plays: []Play{
				{Seat: 1, Card: Card{Diamonds, Two}},
				{Seat: 2, Card: Card{Clubs, King}},
				{Seat: 3, Card: Card{Spades, King}},
				{Seat: 0, Card: Card{Hearts, King}},
			},
			winner: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := &Trick{Leader: tt.plays[0].Seat, Plays: tt.plays}
			if got := tr.Winner(); got != tt.winner {
				t.Fatalf("winner = %d, want %d", got, tt.winner)
			}
		})
	}
}

func TestTrickTurnAdvancesFromLeader(t *testing.T) {
	tr := &Trick{Leader: 3}
	if got := tr.Turn(); got != 3 {
		t.Fatalf("turn = %d, want 3", got)
	}
	tr.Plays = append(tr.Plays, Play{Seat: 3, Card: Card{Clubs, Two}})
	if got := tr.Turn(); got != 0 {
		t.Fatalf("turn = %d, want 0", got)
	}
}

func TestIsLegalPlay(t *testing.T) {
	hand := []Card{{Hearts, Four}, {Hearts, Ten}, {Spades, Ace}}

	tests := []struct {
		name  string
		trick *Trick
		card  Card
		want  error
	}{
		{
			name:  "leader plays anything",
			trick: &Trick{Leader: 0},
			card:  Card{Spades, Ace},
			want:  nil,
		},
		{
			name:  "must follow led suit when holding it",
			trick: &Trick{Leader: 1, Plays: []Play{{Seat: 1, Card: Card{Hearts, Two}}}},
			card:  Card{Spades, Ace},
			want:  ErrIllegalPlay,
		},
		{
			name:  "following led suit is legal",
			trick: &Trick{Leader: 1, Plays: []Play{{Seat: 1, Card: Card{Hearts, Two}}}},
			card:  Card{Hearts, Ten},
			want:  nil,
		},
		{
			name:  "void of led suit frees the play",
			trick: &Trick{Leader: 1, Plays: []Play{{Seat: 1, Card: Card{Clubs, Two}}}},
			card:  Card{Spades, Ace},
			want:  nil,
		},
		{
			name:  "card must be held",
			trick: &Trick{Leader: 0},
			card:  Card{Clubs, Nine},
			want:  ErrCardNotHeld,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := IsLegalPlay(hand, tt.card, tt.trick)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLegalPlaysRestrictsToLedSuit(t *testing.T) {
	hand := []Card{{Hearts, Four}, {Hearts, Ten}, {Spades, Ace}}
	tr := &Trick{Leader: 1, Plays: []Play{{Seat: 1, Card: Card{Hearts, Two}}}}

	plays := LegalPlays(hand, tr)
	if len(plays) != 2 {
		t.Fatalf("legal plays = %d, want 2", len(plays))
	}
	for _, c := range plays {
		if c.Suit != Hearts {
			t.Fatalf("legal play %s is not hearts", c)
		}
	}
}
