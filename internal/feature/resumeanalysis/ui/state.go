// Package ui はレジュメ分析ページ（サーバーレンダリング）を提供します。
// ページの状態は State のいずれか1つで表し、Event による遷移は Transition だけが行います。
package ui

import "strings"

// ユーザーに表示する固定メッセージ。失敗の詳細は表示しません。
const (
	MsgEmptyResume    = "Please paste your resume text or upload a file."
	MsgFileRead       = "Error reading file. Please upload one of the supported file types."
	MsgAnalysisFailed = "Failed to analyze resume. Please try again."
)

// State はページの状態です。Idle, Ready, Analyzing, Result, Failed のいずれかです。
type State interface {
	isState()
}

// Idle は入力が何もない初期状態です。
type Idle struct{}

// Ready は送信可能なレジュメ本文がある状態です。
// Extracted はファイルから読み込んだ本文（なければ空）です。
type Ready struct {
	Text      string
	Extracted string
}

// Analyzing は分析リクエストが処理中の状態です。
type Analyzing struct {
	Text      string
	Extracted string
}

// Result は分析結果を受け取った状態です。
type Result struct {
	Text      string
	Extracted string
	Analysis  string
}

// Failed は直前の操作が失敗した状態です。Message は固定メッセージのいずれかです。
type Failed struct {
	Text      string
	Extracted string
	Message   string
}

func (Idle) isState()      {}
func (Ready) isState()     {}
func (Analyzing) isState() {}
func (Result) isState()    {}
func (Failed) isState()    {}

// Event はページに対する操作や非同期処理の結果です。
type Event interface {
	isEvent()
}

type (
	// TextEdited はテキストエリアが編集されたことを表します。
	TextEdited struct{ Text string }
	// FileLoaded はファイルから本文を読み込めたことを表します。
	FileLoaded struct{ Text string }
	// FileFailed はファイルを読み込めなかったことを表します。
	FileFailed struct{}
	// ExtractedCleared は読み込んだ本文の破棄です。
	ExtractedCleared struct{}
	// SubmitRequested は分析ボタンの押下です。
	SubmitRequested struct{}
	// AnalysisSucceeded は分析APIの成功応答です。
	AnalysisSucceeded struct{ Analysis string }
	// AnalysisFailed は分析APIの失敗（通信エラーを含む）です。
	AnalysisFailed struct{}
)

func (TextEdited) isEvent()        {}
func (FileLoaded) isEvent()        {}
func (FileFailed) isEvent()        {}
func (ExtractedCleared) isEvent()  {}
func (SubmitRequested) isEvent()   {}
func (AnalysisSucceeded) isEvent() {}
func (AnalysisFailed) isEvent()    {}

// Transition は現在の状態とイベントから次の状態を返します。
// 分析中は入力系のイベントを無視し、応答系のイベントは分析中のみ受け付けます。
func Transition(s State, e Event) State {
	if s == nil {
		s = Idle{}
	}
	if a, ok := s.(Analyzing); ok {
		switch ev := e.(type) {
		case AnalysisSucceeded:
			return Result{Text: a.Text, Extracted: a.Extracted, Analysis: ev.Analysis}
		case AnalysisFailed:
			return Failed{Text: a.Text, Extracted: a.Extracted, Message: MsgAnalysisFailed}
		default:
			return s
		}
	}

	switch ev := e.(type) {
	case TextEdited:
		if isBlank(ev.Text) {
			return Idle{}
		}
		return Ready{Text: ev.Text, Extracted: ExtractedOf(s)}
	case FileLoaded:
		if isBlank(ev.Text) {
			return Idle{}
		}
		return Ready{Text: ev.Text, Extracted: ev.Text}
	case FileFailed:
		return Failed{Text: TextOf(s), Extracted: ExtractedOf(s), Message: MsgFileRead}
	case ExtractedCleared:
		return Idle{}
	case SubmitRequested:
		text := TextOf(s)
		if isBlank(text) {
			return Failed{Text: text, Extracted: ExtractedOf(s), Message: MsgEmptyResume}
		}
		return Analyzing{Text: text, Extracted: ExtractedOf(s)}
	}
	return s
}

// TextOf は状態が保持するレジュメ本文を返します。
func TextOf(s State) string {
	switch v := s.(type) {
	case Ready:
		return v.Text
	case Analyzing:
		return v.Text
	case Result:
		return v.Text
	case Failed:
		return v.Text
	}
	return ""
}

// ExtractedOf は状態が保持するファイル由来の本文を返します。
func ExtractedOf(s State) string {
	switch v := s.(type) {
	case Ready:
		return v.Extracted
	case Analyzing:
		return v.Extracted
	case Result:
		return v.Extracted
	case Failed:
		return v.Extracted
	}
	return ""
}

// CanSubmit は分析ボタンを有効にしてよいかを返します。
func CanSubmit(s State) bool {
	return !Busy(s) && !isBlank(TextOf(s))
}

// Busy は分析リクエストが処理中かどうかを返します。
func Busy(s State) bool {
	_, ok := s.(Analyzing)
	return ok
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
