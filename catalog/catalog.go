// Package catalog maps numeric script step ids to step kinds.
package catalog

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strconv"

	"github.com/shibukawa/scriptstep"
)

// StepKind is a script step type. Its value is the numeric id stored in the
// step's id attribute; Unknown covers absent and unsupported ids.
type StepKind uint32

// Step kinds
const (
	Unknown                StepKind = 0
	PerformScript          StepKind = 1
	GoToPreviousField      StepKind = 4
	GoToNextField          StepKind = 5
	GoToLayout             StepKind = 6
	NewRecordRequest       StepKind = 7
	DuplicateRecordRequest StepKind = 8
	DeleteRecordRequest    StepKind = 9
	DeleteAllRecords       StepKind = 10
	InsertCurrentTime      StepKind = 14
	GoToRecordRequestPage  StepKind = 16
	GoToField              StepKind = 17
	CheckRecord            StepKind = 19
	CheckFoundSet          StepKind = 20
	UnsortRecords          StepKind = 21
	EnterFindMode          StepKind = 22
	ShowAllRecords         StepKind = 23
	ModifyLastFind         StepKind = 24
	OmitRecord             StepKind = 25
	OmitMultipleRecords    StepKind = 26
	ShowOmittedOnly        StepKind = 27
	PerformFind            StepKind = 28
	OpenHelp               StepKind = 32
	OpenManageDatabase     StepKind = 38
	ExitApplication        StepKind = 44
	SelectAll              StepKind = 50
	EnterBrowseMode        StepKind = 55
	InsertText             StepKind = 61
	IfStart                StepKind = 68
	Else                   StepKind = 69
	IfEnd                  StepKind = 70
	LoopStart              StepKind = 71
	ExitLoopIf             StepKind = 72
	LoopEnd                StepKind = 73
	CommitRecordRequests   StepKind = 75
	SetFieldData           StepKind = 76
	InsertCalculatedResult StepKind = 77
	FixWindow              StepKind = 79
	NewFile                StepKind = 82
	AllowUserAbort         StepKind = 85
	SetErrorRecording      StepKind = 86
	OpenScriptWorkspace    StepKind = 88
	Comment                StepKind = 89
	HaltScript             StepKind = 90
	ReplaceFieldContents   StepKind = 91
	Beep                   StepKind = 93
	SetUseSystemFormats    StepKind = 94
	GoToPortalRow          StepKind = 99
	CopyRecordRequest      StepKind = 101
	FlushCacheToDisk       StepKind = 102
	ExitScript             StepKind = 103
	OpenSettings           StepKind = 105
	CorrectWord            StepKind = 106
	SpellingOptions        StepKind = 107
	SelectDictionaries     StepKind = 108
	EditUserDictionary     StepKind = 109
	OpenManageValueLists   StepKind = 112
	OpenSharing            StepKind = 113
	OpenFileOptions        StepKind = 114
	AllowFormattingBar     StepKind = 115
	OpenHosts              StepKind = 118
	CloseWindow            StepKind = 121
	NewWindow              StepKind = 122
	IfElse                 StepKind = 125
	ConstrainFoundSet      StepKind = 126
	ExtendFoundSet         StepKind = 127
	OpenFindReplace        StepKind = 129
	OpenManageDataSources  StepKind = 140
	SetVariable            StepKind = 141
	GoToObject             StepKind = 145
	OpenEditSavedFinds     StepKind = 149
	OpenManageLayouts      StepKind = 151
	OpenManageContainers   StepKind = 156
	InsertFromURL          StepKind = 160
	OpenManageThemes       StepKind = 165
	RefreshObject          StepKind = 167
	ClosePopover           StepKind = 169
	UploadToServer         StepKind = 172
	OpenMyApps             StepKind = 183
)

// unsupportedIDs exist in the product but map to more than one step, so they
// resolve to Unknown
var unsupportedIDs = map[uint32]struct{}{
	2: {}, 3: {}, 15: {}, 52: {}, 53: {}, 54: {}, 58: {}, 100: {},
	110: {}, 162: {}, 163: {}, 170: {}, 171: {}, 173: {}, 198: {}, 204: {},
}

var stepNames = map[StepKind]string{
	PerformScript:          "PerformScript",
	GoToPreviousField:      "GoToPreviousField",
	GoToNextField:          "GoToNextField",
	GoToLayout:             "GoToLayout",
	NewRecordRequest:       "NewRecordRequest",
	DuplicateRecordRequest: "DuplicateRecordRequest",
	DeleteRecordRequest:    "DeleteRecordRequest",
	DeleteAllRecords:       "DeleteAllRecords",
	InsertCurrentTime:      "InsertCurrentTime",
	GoToRecordRequestPage:  "GoToRecordRequestPage",
	GoToField:              "GoToField",
	CheckRecord:            "CheckRecord",
	CheckFoundSet:          "CheckFoundSet",
	UnsortRecords:          "UnsortRecords",
	EnterFindMode:          "EnterFindMode",
	ShowAllRecords:         "ShowAllRecords",
	ModifyLastFind:         "ModifyLastFind",
	OmitRecord:             "OmitRecord",
	OmitMultipleRecords:    "OmitMultipleRecords",
	ShowOmittedOnly:        "ShowOmittedOnly",
	PerformFind:            "PerformFind",
	OpenHelp:               "OpenHelp",
	OpenManageDatabase:     "OpenManageDatabase",
	ExitApplication:        "ExitApplication",
	SelectAll:              "SelectAll",
	EnterBrowseMode:        "EnterBrowseMode",
	InsertText:             "InsertText",
	IfStart:                "IfStart",
	Else:                   "Else",
	IfEnd:                  "IfEnd",
	LoopStart:              "LoopStart",
	ExitLoopIf:             "ExitLoopIf",
	LoopEnd:                "LoopEnd",
	CommitRecordRequests:   "CommitRecordRequests",
	SetFieldData:           "SetFieldData",
	InsertCalculatedResult: "InsertCalculatedResult",
	FixWindow:              "FixWindow",
	NewFile:                "NewFile",
	AllowUserAbort:         "AllowUserAbort",
	SetErrorRecording:      "SetErrorRecording",
	OpenScriptWorkspace:    "OpenScriptWorkspace",
	Comment:                "Comment",
	HaltScript:             "HaltScript",
	ReplaceFieldContents:   "ReplaceFieldContents",
	Beep:                   "Beep",
	SetUseSystemFormats:    "SetUseSystemFormats",
	GoToPortalRow:          "GoToPortalRow",
	CopyRecordRequest:      "CopyRecordRequest",
	FlushCacheToDisk:       "FlushCacheToDisk",
	ExitScript:             "ExitScript",
	OpenSettings:           "OpenSettings",
	CorrectWord:            "CorrectWord",
	SpellingOptions:        "SpellingOptions",
	SelectDictionaries:     "SelectDictionaries",
	EditUserDictionary:     "EditUserDictionary",
	OpenManageValueLists:   "OpenManageValueLists",
	OpenSharing:            "OpenSharing",
	OpenFileOptions:        "OpenFileOptions",
	AllowFormattingBar:     "AllowFormattingBar",
	OpenHosts:              "OpenHosts",
	CloseWindow:            "CloseWindow",
	NewWindow:              "NewWindow",
	IfElse:                 "IfElse",
	ConstrainFoundSet:      "ConstrainFoundSet",
	ExtendFoundSet:         "ExtendFoundSet",
	OpenFindReplace:        "OpenFindReplace",
	OpenManageDataSources:  "OpenManageDataSources",
	SetVariable:            "SetVariable",
	GoToObject:             "GoToObject",
	OpenEditSavedFinds:     "OpenEditSavedFinds",
	OpenManageLayouts:      "OpenManageLayouts",
	OpenManageContainers:   "OpenManageContainers",
	InsertFromURL:          "InsertFromURL",
	OpenManageThemes:       "OpenManageThemes",
	RefreshObject:          "RefreshObject",
	ClosePopover:           "ClosePopover",
	UploadToServer:         "UploadToServer",
	OpenMyApps:             "OpenMyApps",
}

// Lookup resolves a numeric id
func Lookup(id uint32) StepKind {
	if _, denied := unsupportedIDs[id]; denied {
		return Unknown
	}

	kind := StepKind(id)
	if _, ok := stepNames[kind]; !ok {
		return Unknown
	}

	return kind
}

// ParseID resolves the decimal id text of a Step element. Text that is not a
// decimal uint32 is an error for the caller to handle.
func ParseID(text string) (StepKind, error) {
	id, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		return Unknown, fmt.Errorf("%w: %q", scriptstep.ErrInvalidStepID, text)
	}

	return Lookup(uint32(id)), nil
}

// ID returns the numeric id, 0 for Unknown
func (k StepKind) ID() uint32 {
	return uint32(k)
}

// String returns the string representation of StepKind
func (k StepKind) String() string {
	if name, ok := stepNames[k]; ok {
		return name
	}

	return "Unknown"
}

// All iterates the known step kinds in id order
func All() iter.Seq[StepKind] {
	return slices.Values(slices.Sorted(maps.Keys(stepNames)))
}
