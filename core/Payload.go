package core

import (
	"fmt"
	"strconv"
	"strings"
)

const PayloadTerminator = "~"

const BattleSituationHeader = "BS" // Battle status 每個 tick 的狀態

// Payload encodes a frame on one line:
// ballX, ballY, player1X, player1Y, player1Score, player2X, player2Y, player2Score
func (f Frame) Payload() string {
	p1, p2 := f.Paddles[Player1], f.Paddles[Player2]
	payload := fmt.Sprintf("%.2f,%.2f,%.2f,%.2f,%d,%.2f,%.2f,%d", f.Ball.X, f.Ball.Y,
		p1.X, p1.Y, f.Score.P1, p2.X, p2.Y, f.Score.P2)
	return BattleSituationHeader + payload + PayloadTerminator
}

// ParsePayload reads a line written by Frame.Payload. Positions come back
// rounded to two decimals; tick and events are not carried on the wire and
// come back zero.
func ParsePayload(payload string) (Frame, error) {
	if !strings.HasPrefix(payload, BattleSituationHeader) || !strings.HasSuffix(payload, PayloadTerminator) {
		return Frame{}, fmt.Errorf("payload %q: missing header or terminator", payload)
	}
	fields := strings.Split(removeHeaderTerminator(payload), ",")
	if len(fields) != 8 {
		return Frame{}, fmt.Errorf("payload %q: want 8 fields, got %d", payload, len(fields))
	}

	var nums [8]float64
	for _, i := range []int{0, 1, 2, 3, 5, 6} {
		n, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return Frame{}, fmt.Errorf("payload field %d: %w", i, err)
		}
		nums[i] = n
	}

	//分數只能是非負整數
	var scores [2]int
	for j, i := range []int{4, 7} {
		n, err := strconv.Atoi(fields[i])
		if err != nil {
			return Frame{}, fmt.Errorf("payload field %d: %w", i, err)
		}
		if n < 0 {
			return Frame{}, fmt.Errorf("payload field %d: negative score %d", i, n)
		}
		scores[j] = n
	}

	return Frame{
		Ball: Vec2{X: nums[0], Y: nums[1]},
		Paddles: [2]Vec2{
			{X: nums[2], Y: nums[3]},
			{X: nums[5], Y: nums[6]},
		},
		Score: Scoreboard{P1: scores[0], P2: scores[1]},
	}, nil
}

func removeHeaderTerminator(payload string) string {
	return payload[len(BattleSituationHeader) : len(payload)-len(PayloadTerminator)]
}
