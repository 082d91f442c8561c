package entity

import (
	"github.com/gabriel-vasile/mimetype"
)

// ExtractionMethod はアップロードされたファイルからテキストを得た方法です。
type ExtractionMethod string

const (
	// MethodPlain はバイト列をそのままテキストとして読んだことを示します。
	MethodPlain ExtractionMethod = "plain"
	// MethodOCR は外部の文書解析サービス（Cloud Vision）で抽出したことを示します。
	MethodOCR ExtractionMethod = "ocr"
)

// DocumentKind はファイル内容から判定した文書の種別です。
type DocumentKind int

const (
	KindUnknown DocumentKind = iota
	KindPlainText
	KindPDF
	KindWord
)

// MIME types used for classification.
const (
	MIMEPlainText = "text/plain"
	MIMEPDF       = "application/pdf"
	MIMEDOCX      = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MIMEDOC       = "application/msword"
)

// Document はアップロードされたファイルから抽出したレジュメ本文です。
type Document struct {
	FileName    string
	ContentType string
	Text        string
	Method      ExtractionMethod
}

// DetectKind は拡張子ではなくバイト列の内容から文書種別を判定します。
// text/plain から派生する型（CSV、JSON、HTML など）はすべてテキスト扱いです。
func DetectKind(data []byte) (DocumentKind, string) {
	mt := mimetype.Detect(data)
	switch {
	case mt.Is(MIMEPDF):
		return KindPDF, mt.String()
	case mt.Is(MIMEDOCX), mt.Is(MIMEDOC):
		return KindWord, mt.String()
	}
	for m := mt; m != nil; m = m.Parent() {
		if m.Is(MIMEPlainText) {
			return KindPlainText, mt.String()
		}
	}
	return KindUnknown, mt.String()
}
