//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

import (
	"fmt"
	"strings"
)

// Move is a 32-bit type encoding a chess move as source square, target
// square, the moving piece type, a captured piece type and a move flag.
//  MoveNone Move = 0
//  BITMAP 32-bit
//  |unused-------------------------|-Move -------------------------|
//  3 3 2 2 2 2 2 2 2 2 2 2 1 1 1 1 | 1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
//  1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 | 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
//  --------------------------------|--------------------------------
//                                  |                     1 1 1 1 1 1  source
//                                  |         1 1 1 1 1 1              target
//                                  | 1 1 1 1                          piece
//                            1 1 1 1                                  capture
//                      1 1 1 1                                        flag
type Move uint32

const (
	// MoveNone is an empty, invalid move
	MoveNone Move = 0
)

// MoveFlag describes special properties of a move which cannot be derived
// from source, target, piece and capture alone.
//  MfNone       MoveFlag = 0
//  MfWEnPassant MoveFlag = 1
//  MfBEnPassant MoveFlag = 2
//  MfWDoublePawn MoveFlag = 3
//  MfBDoublePawn MoveFlag = 4
//  MfWKCastle   MoveFlag = 5
//  MfWQCastle   MoveFlag = 6
//  MfBKCastle   MoveFlag = 7
//  MfBQCastle   MoveFlag = 8
//  MfPromoN     MoveFlag = 9
//  MfPromoB     MoveFlag = 10
//  MfPromoR     MoveFlag = 11
//  MfPromoQ     MoveFlag = 12
type MoveFlag uint8

// MoveFlag is a set of constants describing special move properties
const (
	MfNone MoveFlag = iota
	MfWEnPassant
	MfBEnPassant
	MfWDoublePawn
	MfBDoublePawn
	MfWKCastle
	MfWQCastle
	MfBKCastle
	MfBQCastle
	MfPromoN
	MfPromoB
	MfPromoR
	MfPromoQ
	mfLength
)

var moveFlagToString = [mfLength]string{
	"None",
	"White En-passant",
	"Black En-passant",
	"White Double Pawn Push",
	"Black Double Pawn Push",
	"White King Castle",
	"White Queen Castle",
	"Black King Castle",
	"Black Queen Castle",
	"Knight Promotion",
	"Bishop Promotion",
	"Rook Promotion",
	"Queen Promotion",
}

// String returns a human-readable name for the move flag
func (mf MoveFlag) String() string {
	return moveFlagToString[mf]
}

// IsValid checks if mf is a valid move flag
func (mf MoveFlag) IsValid() bool {
	return mf < mfLength
}

// IsCastling reports whether mf marks a castling move
func (mf MoveFlag) IsCastling() bool {
	return mf == MfWKCastle || mf == MfWQCastle || mf == MfBKCastle || mf == MfBQCastle
}

// IsEnPassant reports whether mf marks an en passant capture
func (mf MoveFlag) IsEnPassant() bool {
	return mf == MfWEnPassant || mf == MfBEnPassant
}

// IsDoublePawnPush reports whether mf marks a pawn double push
func (mf MoveFlag) IsDoublePawnPush() bool {
	return mf == MfWDoublePawn || mf == MfBDoublePawn
}

// IsPromotion reports whether mf marks a promotion move
func (mf MoveFlag) IsPromotion() bool {
	return mf >= MfPromoN && mf <= MfPromoQ
}

// PromotionType returns the piece type mf promotes to. Must only be
// called when IsPromotion() is true.
func (mf MoveFlag) PromotionType() PieceType {
	switch mf {
	case MfPromoN:
		return Knight
	case MfPromoB:
		return Bishop
	case MfPromoR:
		return Rook
	case MfPromoQ:
		return Queen
	default:
		return PtNone
	}
}

// CreateMove encodes a Move from a source and target square, the moving
// piece type, the captured piece type (PtNone if none) and a move flag.
func CreateMove(source Square, target Square, piece PieceType, capture PieceType, flag MoveFlag) Move {
	return Move(source) |
		Move(target)<<targetShift |
		Move(piece)<<pieceShift |
		Move(capture)<<captureShift |
		Move(flag)<<flagShift
}

// From returns the source square of the move
func (m Move) From() Square {
	return Square(m & sourceMask)
}

// To returns the target square of the move
func (m Move) To() Square {
	return Square((m & targetMask) >> targetShift)
}

// PieceType returns the type of the moving piece
func (m Move) PieceType() PieceType {
	return PieceType((m & pieceMask) >> pieceShift)
}

// CaptureType returns the type of a captured piece, or PtNone if the
// move is not a capture
func (m Move) CaptureType() PieceType {
	return PieceType((m & captureMask) >> captureShift)
}

// IsCapture reports whether the move captures an opponent's piece
func (m Move) IsCapture() bool {
	return m.CaptureType() != PtNone
}

// Flag returns the MoveFlag of the move
func (m Move) Flag() MoveFlag {
	return MoveFlag((m & flagMask) >> flagShift)
}

// IsCastling reports whether the move is a castling move
func (m Move) IsCastling() bool {
	return m.Flag().IsCastling()
}

// IsEnPassant reports whether the move is an en passant capture
func (m Move) IsEnPassant() bool {
	return m.Flag().IsEnPassant()
}

// IsDoublePawnPush reports whether the move is a pawn double push
func (m Move) IsDoublePawnPush() bool {
	return m.Flag().IsDoublePawnPush()
}

// IsPromotion reports whether the move promotes a pawn
func (m Move) IsPromotion() bool {
	return m.Flag().IsPromotion()
}

// PromotionType returns the piece type a promotion move promotes to.
// Must only be called when IsPromotion() is true.
func (m Move) PromotionType() PieceType {
	return m.Flag().PromotionType()
}

// Compact packs the move into its 16 low bits (source, target and flag).
// The moving piece and any captured piece are left out and must be
// recovered from the board the move was generated against - this is the
// form stored in the transposition table, where every byte counts.
func (m Move) Compact() uint16 {
	return uint16(m.From()) | uint16(m.To())<<6 | uint16(m.Flag())<<12
}

// MoveFromCompact rebuilds a Move from a Compact() encoding plus the
// moving piece type and captured piece type (PtNone if none), both
// looked up from the board the compact move applies to.
func MoveFromCompact(compact uint16, piece PieceType, capture PieceType) Move {
	if compact == 0 {
		return MoveNone
	}
	source := Square(compact & 0x3F)
	target := Square((compact >> 6) & 0x3F)
	flag := MoveFlag((compact >> 12) & 0xF)
	return CreateMove(source, target, piece, capture, flag)
}

// IsValid checks if the move has valid squares, piece types and flag.
// MoveNone is not a valid move in this sense.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.PieceType().IsValid() &&
		(m.CaptureType().IsValid()) &&
		m.Flag().IsValid()
}

// String returns a string representation of the move
func (m Move) String() string {
	if m == MoveNone {
		return "Move: { MoveNone }"
	}
	return fmt.Sprintf("Move: { %-6s piece:%1s capture:%1s flag:%s }",
		m.StringUci(), m.PieceType().Char(), m.CaptureType().Char(), m.Flag())
}

// StringUci returns a string representation of the move in UCI notation
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var os strings.Builder
	os.WriteString(m.From().String())
	os.WriteString(m.To().String())
	if m.Flag().IsPromotion() {
		os.WriteString(strings.ToLower(m.Flag().PromotionType().Char()))
	}
	return os.String()
}

// StringBits returns a string showing the individual bit fields of a move
func (m Move) StringBits() string {
	return fmt.Sprintf(
		"Move { From[%-0.6b](%s) To[%-0.6b](%s) Piece[%-0.4b](%s) Capture[%-0.4b](%s) Flag[%-0.4b](%s) (%d)}",
		m.From(), m.From().String(),
		m.To(), m.To().String(),
		m.PieceType(), m.PieceType().Char(),
		m.CaptureType(), m.CaptureType().Char(),
		m.Flag(), m.Flag(),
		m)
}

/* @formatter:off
   BITMAP 32-bit
   3 3 2 2 2 2 2 2 2 2 2 2 1 1 1 1 1 1 1 1 1 1 0 0 0 0 0 0 0 0 0 0
   1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0 9 8 7 6 5 4 3 2 1 0
   ----------------------------------------------------------------
                                                     1 1 1 1 1 1       source
                                         1 1 1 1 1 1                  target
                                 1 1 1 1                              piece
                         1 1 1 1                                      capture
                 1 1 1 1                                              flag
*/ // @formatter:on

const (
	targetShift  uint = 6
	pieceShift   uint = 12
	captureShift uint = 16
	flagShift    uint = 20

	sourceMask  Move = 0x3F
	targetMask  Move = 0x3F << targetShift
	pieceMask   Move = 0xF << pieceShift
	captureMask Move = 0xF << captureShift
	flagMask    Move = 0xF << flagShift
)
