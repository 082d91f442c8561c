package ui

import (
	"regexp"
	"strings"
)

// BlockKind は描画ブロックの種別です。
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockBreak
)

// Span は段落内の連続したテキストです。
type Span struct {
	Text     string
	Emphasis bool
}

// Block は分析結果の1行分の描画単位です。
type Block struct {
	Kind  BlockKind
	Text  string // Heading のみ
	Spans []Span // Paragraph のみ
}

// IsHeading, IsBreak はテンプレートから参照します。
func (b Block) IsHeading() bool { return b.Kind == BlockHeading }
func (b Block) IsBreak() bool   { return b.Kind == BlockBreak }

const emphasisMarker = "**"

// 「数字1桁 + ピリオド + テキスト」の行を見出しとみなす
var headingPattern = regexp.MustCompile(`^\d\.\s*\S`)

// Render は分析テキストを行単位でブロックに変換します。
// 見出し・空行・強調以外の構造は解釈しません。
func Render(analysis string) []Block {
	if analysis == "" {
		return nil
	}
	lines := strings.Split(analysis, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		switch {
		case strings.TrimSpace(line) == "":
			blocks = append(blocks, Block{Kind: BlockBreak})
		case headingPattern.MatchString(line):
			blocks = append(blocks, Block{Kind: BlockHeading, Text: strings.ReplaceAll(line, emphasisMarker, "")})
		default:
			blocks = append(blocks, Block{Kind: BlockParagraph, Spans: emphasisSpans(line)})
		}
	}
	return blocks
}

// emphasisSpans は対になった ** を強調スパンに変換します。
// 閉じられていない ** はそのまま文字として残します。
func emphasisSpans(line string) []Span {
	var spans []Span
	rest := line
	for {
		open := strings.Index(rest, emphasisMarker)
		if open < 0 {
			break
		}
		closeAt := strings.Index(rest[open+len(emphasisMarker):], emphasisMarker)
		if closeAt < 0 {
			break
		}
		inner := rest[open+len(emphasisMarker) : open+len(emphasisMarker)+closeAt]
		if open > 0 {
			spans = append(spans, Span{Text: rest[:open]})
		}
		if inner != "" {
			spans = append(spans, Span{Text: inner, Emphasis: true})
		}
		rest = rest[open+2*len(emphasisMarker)+closeAt:]
	}
	if rest != "" {
		spans = append(spans, Span{Text: rest})
	}
	return spans
}
