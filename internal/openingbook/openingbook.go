/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package openingbook reads game databases of different formats into an
// internal data structure. It can then be queried for a book move on a
// certain position.
//
// Supported formats are currently:
//
// Simple for files storing a game per line with from-square and to-square
// notation
//
// San for files with lines of moves in SAN notation
//
// Pgn for PGN formatted games
package openingbook

import (
	"bufio"
	"encoding/gob"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	myLogging "github.com/Juules32/sisyphus32-sub000/internal/logging"
	"github.com/Juules32/sisyphus32-sub000/internal/movegen"
	"github.com/Juules32/sisyphus32-sub000/internal/position"
	"github.com/Juules32/sisyphus32-sub000/internal/util"
	. "github.com/Juules32/sisyphus32-sub000/pkg/types"
)

var out = message.NewPrinter(language.German)
var log *logging.Logger

// Key is the zobrist key type used to index book entries - aliased so
// callers don't need to import the position package just for this.
type Key = position.Key

// setting to use multiple goroutines or not - useful for debugging
const parallel = true

// BookFormat represents the supported book formats.
type BookFormat uint8

// Supported book formats.
const (
	Simple BookFormat = iota
	San
	Pgn
)

// Successor represents a tuple of a move (in its compact uint32 form)
// and the zobrist key of the position the move leads to.
type Successor struct {
	Move      uint32
	NextEntry uint64
}

// BookEntry describes exactly one position, identified by its zobrist
// key, and has links to the successor positions reachable from it.
type BookEntry struct {
	ZobristKey uint64
	Counter    int
	Moves      []Successor
}

// Book is a chess opening book which can be read from different file
// formats into an internal data structure and queried by position.
type Book struct {
	bookMap     map[uint64]BookEntry
	rootEntry   uint64
	initialized bool
}

// NewBook creates an empty, uninitialized opening book.
func NewBook() *Book {
	return &Book{bookMap: make(map[uint64]BookEntry)}
}

// to serialize parallel access to the book map while processing lines
var bookLock sync.Mutex

// Initialize reads and processes bookFile (resolved relative to bookFolder
// when bookFile is not empty, otherwise bookFolder is itself treated as the
// full path) in the given format. If useCache is set and a cache file exists
// next to the book file it is loaded instead, unless recreateCache forces a
// fresh read.
func (b *Book) Initialize(bookFolder string, bookFile string, bookFormat BookFormat, useCache bool, recreateCache bool) error {
	if b.initialized {
		return nil
	}

	if log == nil {
		log = myLogging.GetLog()
	}
	log.Info("Initializing Opening Book")

	startTotal := time.Now()

	var bookPath string
	var err error
	if bookFile == "" {
		bookPath, err = util.ResolveFile(bookFolder)
	} else {
		var folder string
		folder, err = util.ResolveFolder(bookFolder)
		if err == nil {
			bookPath = filepath.Join(folder, bookFile)
		}
	}
	if err != nil {
		log.Errorf("Book path \"%s/%s\" could not be resolved: %s\n", bookFolder, bookFile, err)
		return err
	}

	// if cache enabled check if we have a cache file and load from cache
	if useCache && !recreateCache {
		startReading := time.Now()
		hasCache, cacheErr := b.loadFromCache(bookPath)
		elapsedReading := time.Since(startReading)
		if cacheErr != nil {
			log.Warningf("Cache could not be loaded. Reading original data from \"%s\"", bookPath)
		}
		if hasCache {
			log.Infof("Finished reading cache from file in: %d ms\n", elapsedReading.Milliseconds())
			log.Infof("Book from cache file contains %d entries\n", len(b.bookMap))
			b.initialized = true
			return nil
		} // else no cache file just load the data from original file
	}

	// read book from file
	log.Infof("Reading opening book file: %s\n", bookPath)
	startReading := time.Now()
	lines, err := b.readFile(bookPath)
	if err != nil {
		log.Errorf("File \"%s\" could not be read: %s\n", bookPath, err)
		return err
	}
	elapsedReading := time.Since(startReading)
	log.Infof("Finished reading %d lines from file in: %d ms\n", len(*lines), elapsedReading.Milliseconds())

	// add root position
	startPosition := position.NewPosition()
	b.bookMap = make(map[uint64]BookEntry)
	b.rootEntry = uint64(startPosition.ZobristKey())
	b.bookMap[b.rootEntry] = BookEntry{ZobristKey: b.rootEntry, Counter: 0, Moves: []Successor{}}

	// process lines
	if parallel {
		log.Infof("Processing %d lines in parallel with format: %v\n", len(*lines), bookFormat)
	} else {
		log.Infof("Processing %d lines sequential with format: %v\n", len(*lines), bookFormat)
	}
	startProcessing := time.Now()
	b.process(lines, bookFormat)
	elapsedProcessing := time.Since(startProcessing)
	log.Infof("Finished processing %d lines in: %d ms\n", len(*lines), elapsedProcessing.Milliseconds())

	elapsedTotal := time.Since(startTotal)
	log.Infof("Book contains %d entries\n", len(b.bookMap))
	log.Infof("Total initialization time : %d ms\n", elapsedTotal.Milliseconds())

	// saving to cache
	if useCache {
		log.Infof("Saving to cache...")
		startSave := time.Now()
		cacheFile, nBytes, cacheErr := b.saveToCache(bookPath)
		if cacheErr != nil {
			log.Errorf("Error while saving to cache: %s\n", cacheErr)
		}
		elapsedSave := time.Since(startSave)
		log.Infof("Saved %d kB to cache %s in %d ms\n", nBytes/1_024, cacheFile, elapsedSave.Milliseconds())
	}

	b.initialized = true
	return nil
}

// NumberOfEntries returns the number of entries in the opening book.
func (b *Book) NumberOfEntries() int {
	return len(b.bookMap)
}

// GetEntry returns a copy of the entry with the corresponding key.
func (b *Book) GetEntry(key Key) (BookEntry, bool) {
	entry, ok := b.bookMap[uint64(key)]
	return entry, ok
}

// Reset resets the opening book so it can/must be initialized again.
func (b *Book) Reset() {
	b.bookMap = map[uint64]BookEntry{}
	b.rootEntry = 0
	b.initialized = false
}

// /////////////////////////////////////////////////
// Private
// /////////////////////////////////////////////////

// readFile reads a complete file into a slice of strings.
func (b *Book) readFile(bookPath string) (*[]string, error) {
	f, err := os.Open(bookPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			log.Errorf("File \"%s\" could not be closed: %s\n", bookPath, cerr)
		}
	}()
	var lines []string
	s := bufio.NewScanner(f)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err = s.Err(); err != nil {
		return nil, err
	}
	return &lines, nil
}

// process dispatches all lines to the right per-format processor.
func (b *Book) process(lines *[]string, format BookFormat) {
	switch format {
	case Simple:
		b.processSimple(lines)
	case San:
		b.processSan(lines)
	case Pgn:
		b.processPgn(lines)
	}
}

// processes all lines of Simple format, using goroutines in parallel if enabled
func (b *Book) processSimple(lines *[]string) {
	if parallel {
		var wg sync.WaitGroup
		wg.Add(len(*lines))
		for _, line := range *lines {
			go func(line string) {
				defer wg.Done()
				b.processSimpleLine(line)
			}(line)
		}
		wg.Wait()
	} else {
		for _, line := range *lines {
			b.processSimpleLine(line)
		}
	}
}

var regexSimpleUciMove = regexp.MustCompile("([a-h][1-8][a-h][1-8])")

// processes one line of simple format and adds each move to book
func (b *Book) processSimpleLine(line string) {
	line = strings.TrimSpace(line)

	matches := regexSimpleUciMove.FindAllString(line, -1)
	if len(matches) == 0 {
		return
	}

	pos := position.NewPosition()
	b.bumpRootCounter()

	// movegen is not thread safe so each line gets its own instance
	mg := movegen.NewMoveGen()

	for _, moveString := range matches {
		if err := b.processSingleMove(moveString, mg, pos); err != nil {
			break
		}
	}
}

// processes all lines of SAN format, using goroutines in parallel if enabled
func (b *Book) processSan(lines *[]string) {
	if parallel {
		var wg sync.WaitGroup
		wg.Add(len(*lines))
		for _, line := range *lines {
			go func(line string) {
				defer wg.Done()
				b.processSanLine(line)
			}(line)
		}
		wg.Wait()
	} else {
		for _, line := range *lines {
			b.processSanLine(line)
		}
	}
}

var regexResult = regexp.MustCompile(`((1-0)|(0-1)|(1/2-1/2)|(\*))$`)

// processPgn processes a PGN formatted file. PGN files have additional
// metadata and spread their move section over several lines. The metadata
// is ignored; only the move section is looked at.
func (b *Book) processPgn(lines *[]string) {
	var gamesSlices [][]string

	startSlicing := time.Now()
	start := 0
	for i, l := range *lines {
		l = strings.TrimSpace(l)
		if regexResult.MatchString(l) {
			end := i + 1
			gamesSlices = append(gamesSlices, (*lines)[start:end])
			start = end
		}
	}
	elapsedSlicing := time.Since(startSlicing)
	log.Infof("Finished finding %d games from file in: %d ms\n", len(gamesSlices), elapsedSlicing.Milliseconds())

	startProcessing := time.Now()
	if parallel {
		var wg sync.WaitGroup
		wg.Add(len(gamesSlices))
		for _, gs := range gamesSlices {
			go func(gs []string) {
				defer wg.Done()
				b.processPgnGame(gs)
			}(gs)
		}
		wg.Wait()
	} else {
		for _, gs := range gamesSlices {
			b.processPgnGame(gs)
		}
	}
	elapsedProcessing := time.Since(startProcessing)
	log.Infof("Finished processing %d games from file in: %d ms\n", len(gamesSlices), elapsedProcessing.Milliseconds())
}

var regexTrailingComments = regexp.MustCompile(`;.*$`)
var regexTagPairs = regexp.MustCompile(`\[\w+ +".*?"\]`)
var regexNagAnnotation = regexp.MustCompile(`(\$\d{1,3})`) // no NAG annotation supported
var regexBracketComments = regexp.MustCompile(`{[^{}]*}`)  // bracket comments
var regexReservedSymbols = regexp.MustCompile(`<[^<>]*>`)  // reserved symbols < >
var regexRavVariants = regexp.MustCompile(`\([^()]*\)`)    // RAV variant comments ( )

// processPgnGame processes one game comprising several input lines.
func (b *Book) processPgnGame(gameSlice []string) {
	var moveLine strings.Builder

	for _, l := range gameSlice {
		l = strings.TrimSpace(l)
		if strings.HasPrefix(l, "%") { // skip comment lines
			continue
		}
		// order matters - comments last
		l = regexTagPairs.ReplaceAllString(l, "")
		l = regexResult.ReplaceAllString(l, "")
		l = regexTrailingComments.ReplaceAllString(l, "")
		l = strings.TrimSpace(l)
		if len(l) == 0 {
			continue
		}
		moveLine.WriteString(" ")
		moveLine.WriteString(l)
	}
	line := moveLine.String()

	line = regexNagAnnotation.ReplaceAllString(line, " ")
	line = regexBracketComments.ReplaceAllString(line, " ")
	line = regexReservedSymbols.ReplaceAllString(line, " ")
	// RAV variation comments can be nested - therefore loop
	for regexRavVariants.MatchString(line) {
		line = regexRavVariants.ReplaceAllString(line, " ")
	}

	b.processSanLine(line)
}

var regexSanLineStart = regexp.MustCompile(`^\d+\. ?`)
var regexSanLineCleanUpNumbers = regexp.MustCompile(`(\d+\.{1,3} ?)`)
var regexSanLineCleanUpResults = regexp.MustCompile(`(1/2|1|0)-(1/2|1|0)`)
var regexWhiteSpace = regexp.MustCompile(`\s+`)

// processSanLine processes one line of SAN format.
//
// Example:
//
//	1. f4 d5 2. Nf3 Nf6 3. e3 g6 4. b3 Bg7 5. Bb2 O-O 6. Be2 c5 7. O-O Nc6 8. Ne5 Qc7 1/2-1/2
func (b *Book) processSanLine(line string) {
	line = strings.TrimSpace(line)

	if !regexSanLineStart.MatchString(line) {
		return
	}

	line = regexSanLineCleanUpNumbers.ReplaceAllString(line, "")
	line = regexSanLineCleanUpResults.ReplaceAllString(line, "")
	line = strings.TrimSpace(line)

	moveStrings := regexWhiteSpace.Split(line, -1)
	if len(moveStrings) == 0 {
		return
	}

	pos := position.NewPosition()
	b.bumpRootCounter()

	mg := movegen.NewMoveGen()

	for _, moveString := range moveStrings {
		if err := b.processSingleMove(moveString, mg, pos); err != nil {
			log.Warningf("Move not valid %s on %s", moveString, pos.StringFen())
			break
		}
	}
}

// bumpRootCounter increases the visit counter of the root position entry.
func (b *Book) bumpRootCounter() {
	bookLock.Lock()
	defer bookLock.Unlock()
	e, found := b.bookMap[b.rootEntry]
	if !found {
		panic("root entry of book map not found")
	}
	e.Counter++
	b.bookMap[b.rootEntry] = e
}

var regexUciMove = regexp.MustCompile("([a-h][1-8][a-h][1-8])([NBRQnbrq])?")
var regexSanMove = regexp.MustCompile(`([NBRQK])?([a-h])?([1-8])?x?([a-h][1-8]|O-O-O|O-O)(=?([NBRQ]))?([!?+#]*)?`)

// processSingleMove parses a single move string in either UCI or SAN
// format, applies it to pos and links the resulting position into the book.
func (b *Book) processSingleMove(s string, mg *movegen.Movegen, pos *position.Position) error {
	move := MoveNone
	if regexUciMove.MatchString(s) {
		move = mg.GetMoveFromUci(pos, s)
	} else if regexSanMove.MatchString(s) {
		move = mg.GetMoveFromSan(pos, s)
	}
	if !move.IsValid() {
		return errors.New("invalid move " + s)
	}
	curPosKey := uint64(pos.ZobristKey())
	pos.DoMove(move)
	nextPosKey := uint64(pos.ZobristKey())
	b.addToBook(curPosKey, nextPosKey, uint32(move))
	return nil
}

// addToBook links move from curPosKey to nextPosKey, creating or updating
// the successor entry. Safe for concurrent use.
func (b *Book) addToBook(curPosKey uint64, nextPosKey uint64, move uint32) {
	bookLock.Lock()
	defer bookLock.Unlock()

	currentPosEntry, found := b.bookMap[curPosKey]
	if !found {
		log.Error("Could not find current position in book.")
		return
	}

	nextPosEntry, found := b.bookMap[nextPosKey]
	if found {
		nextPosEntry.Counter++
		b.bookMap[nextPosKey] = nextPosEntry
		return
	}

	b.bookMap[nextPosKey] = BookEntry{ZobristKey: nextPosKey, Counter: 1, Moves: nil}
	nextPosEntry = b.bookMap[nextPosKey]
	currentPosEntry.Moves = append(currentPosEntry.Moves, Successor{Move: move, NextEntry: nextPosEntry.ZobristKey})
	b.bookMap[curPosKey] = currentPosEntry
}

func (b *Book) loadFromCache(bookPath string) (bool, error) {
	cachePath := bookPath + ".cache"

	decodeFile, err := os.Open(cachePath)
	if err != nil {
		return false, err
	}
	defer decodeFile.Close()

	decoder := gob.NewDecoder(decodeFile)

	bookLock.Lock()
	err = decoder.Decode(&b.bookMap)
	bookLock.Unlock()
	if err != nil {
		return false, err
	}

	p := position.NewPosition()
	b.rootEntry = uint64(p.ZobristKey())

	return true, nil
}

func (b *Book) saveToCache(bookPath string) (string, int64, error) {
	cachePath := bookPath + ".cache"

	encodeFile, err := os.Create(cachePath)
	if err != nil {
		return cachePath, 0, err
	}
	enc := gob.NewEncoder(encodeFile)

	bookLock.Lock()
	encErr := enc.Encode(b.bookMap)
	bookLock.Unlock()
	if encErr != nil {
		_ = encodeFile.Close()
		return cachePath, 0, encErr
	}

	if err = encodeFile.Close(); err != nil {
		return cachePath, 0, err
	}

	fileInfo, _ := os.Stat(cachePath)
	return cachePath, fileInfo.Size(), nil
}
