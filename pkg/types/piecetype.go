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

// PieceType is the colorless kind of a chess piece. Its values are chosen so
// that Piece.TypeOf() is a plain "% 6" of the concrete Piece value (White and
// Black pieces of the same kind are 6 apart, see piece.go), which is what the
// magic-bitboard attack tables and the piece-square tables are indexed by.
//  Pawn     = 0
//  Knight   = 1
//  Bishop   = 2
//  Rook     = 3
//  Queen    = 4
//  King     = 5
//  PtNone   = 6
//  PtLength = 6
type PieceType uint8

// PieceType is a set of constants for piece types in chess
const (
	Pawn     PieceType = 0
	Knight   PieceType = 1
	Bishop   PieceType = 2
	Rook     PieceType = 3
	Queen    PieceType = 4
	King     PieceType = 5
	PtNone   PieceType = 6
	PtLength PieceType = 6
)

// IsValid check if pt is a valid piece type
func (pt PieceType) IsValid() bool {
	return pt < PtNone
}

// IsSliding reports whether pieces of this type move along rays (bishop,
// rook, queen) as opposed to a fixed set of target squares.
func (pt PieceType) IsSliding() bool {
	return pt == Bishop || pt == Rook || pt == Queen
}

// array of values for each piece type when calculating game phase
var gamePhaseValue = [PtLength]int{0, 1, 1, 2, 4, 0}

// GamePhaseValue returns a value for calculating game phase
// by adding the number of certain piece type times this value
func (pt PieceType) GamePhaseValue() int {
	return gamePhaseValue[pt]
}

// array of static values of each piece type
var pieceTypeValue = [PtLength]Value{100, 320, 330, 500, 900, 2000}

// ValueOf returns a static value for the piece type
func (pt PieceType) ValueOf() Value {
	return pieceTypeValue[pt]
}

// array of string labels for piece types
var pieceTypeToString = [PtLength + 1]string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King", "NOPIECE"}

// String returns a string representation of a piece type
func (pt PieceType) String() string {
	return pieceTypeToString[pt]
}

// array of string labels for piece types
var pieceTypeToChar = "NBRQK-"

// Char returns a single char string representation of a piece type.
// Pawn has no conventional letter and returns "P".
func (pt PieceType) Char() string {
	if pt == Pawn {
		return "P"
	}
	return string(pieceTypeToChar[pt-1])
}
