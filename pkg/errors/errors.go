// Package errors はライブラリ全体のエラーハンドリングと警告システムを提供します。
// 構造化されたエラー情報とスタックトレース付きのエラー生成を提供します。
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	グローバル警告ハンドリング
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// デフォルトのハンドラは標準エラー出力にログを出す
		log.Printf("grove-warning: %v\n", w)
	}
	// zerologロガー（循環importを避けるため遅延初期化）
	zerologWarnFunc func(warning error)
)

// SetWarningHandler はライブラリ全体の警告ハンドラを設定します。
// 問題解析フェーズで発生するDegenerateLabelsWarningなどの処理方法を制御できます。
//
// 例:
//
//	errors.SetWarningHandler(func(w error) {
//	    // 警告を無視する
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc はzerolog警告関数を設定します（循環importを避けるため）。
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn は警告を発生させます。
// zerologが設定されている場合は構造化ログとして出力し、そうでなければ従来のハンドラを使用します。
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	警告型
//
// ===========================================================================

// DegenerateLabelsWarning はラベル列が退化している場合（クラスが1種類のみ等）に
// 問題解析フェーズで発生する警告です。
type DegenerateLabelsWarning struct {
	RowCount   int
	ClassCount int
	Message    string
}

func (w *DegenerateLabelsWarning) Error() string {
	if w.Message != "" {
		return fmt.Sprintf("degenerate label column: %d classes over %d rows: %s", w.ClassCount, w.RowCount, w.Message)
	}
	return fmt.Sprintf("degenerate label column: %d classes over %d rows", w.ClassCount, w.RowCount)
}

// MarshalZerologObject はzerologのイベントに構造化された警告情報を追加します。
func (w *DegenerateLabelsWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Int("row_count", w.RowCount).
		Int("class_count", w.ClassCount).
		Str("message", w.Message).
		Str("type", "DegenerateLabelsWarning")
}

// NewDegenerateLabelsWarning は新しいDegenerateLabelsWarningを作成します。
func NewDegenerateLabelsWarning(rowCount, classCount int, message string) *DegenerateLabelsWarning {
	return &DegenerateLabelsWarning{RowCount: rowCount, ClassCount: classCount, Message: message}
}

// ===========================================================================
//
//	構造化されたエラー型
//
// ===========================================================================

// InvalidParameterError はオプションタグなどのパラメータが許容される
// 列挙集合の外にある場合のエラーです。
type InvalidParameterError struct {
	Op        string
	ParamName string
	Value     interface{}
	Allowed   string
}

func (e *InvalidParameterError) Error() string {
	if e.Allowed != "" {
		return fmt.Sprintf("grove: %s: invalid value for '%s': %v (allowed: %s)", e.Op, e.ParamName, e.Value, e.Allowed)
	}
	return fmt.Sprintf("grove: %s: invalid value for '%s': %v", e.Op, e.ParamName, e.Value)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *InvalidParameterError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("param_name", e.ParamName).
		Interface("value", e.Value).
		Str("allowed", e.Allowed).
		Str("type", "InvalidParameterError")
}

// NewInvalidParameterError は新しいInvalidParameterErrorを作成し、スタックトレースを付与します。
func NewInvalidParameterError(op, param string, value interface{}, allowed string) error {
	err := &InvalidParameterError{Op: op, ParamName: param, Value: value, Allowed: allowed}
	return errors.WithStack(err)
}

// BufferSizeError はserialize/deserialize呼び出しのバッファ長が
// 要求される固定長または計算された長さと一致しない場合のエラーです。
type BufferSizeError struct {
	Op       string
	Expected int
	Got      int
}

func (e *BufferSizeError) Error() string {
	return fmt.Sprintf("grove: %s: wrong number of parameters. Expected %d, got %d", e.Op, e.Expected, e.Got)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *BufferSizeError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("expected", e.Expected).
		Int("got", e.Got).
		Str("type", "BufferSizeError")
}

// NewBufferSizeError は新しいBufferSizeErrorを作成し、スタックトレースを付与します。
func NewBufferSizeError(op string, expected, got int) error {
	err := &BufferSizeError{Op: op, Expected: expected, Got: got}
	return errors.WithStack(err)
}

// IndexError はクラスカタログなどへのインデックスが範囲外の場合のエラーです。
type IndexError struct {
	Op    string
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("grove: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Size)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *IndexError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("index", e.Index).
		Int("size", e.Size).
		Str("type", "IndexError")
}

// NewIndexError は新しいIndexErrorを作成し、スタックトレースを付与します。
func NewIndexError(op string, index, size int) error {
	err := &IndexError{Op: op, Index: index, Size: size}
	return errors.WithStack(err)
}

// NotFittedError は未入力のProblemSpecを必要とする操作を
// 入力前に呼び出した場合のエラーです。
type NotFittedError struct {
	TypeName string
	Method   string
}

func (e *NotFittedError) Error() string {
	return fmt.Sprintf("grove: %s: not populated yet. Populate it before calling %s()", e.TypeName, e.Method)
}

// MarshalZerologObject はzerologのイベントに構造化されたエラー情報を追加します。
func (e *NotFittedError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("type_name", e.TypeName).
		Str("method", e.Method).
		Str("type", "NotFittedError")
}

// NewNotFittedError は新しいNotFittedErrorを作成し、スタックトレースを付与します。
func NewNotFittedError(typeName, method string) error {
	err := &NotFittedError{TypeName: typeName, Method: method}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors ラッパー関数
//
// ===========================================================================

// Is はエラーが特定のターゲットエラーかどうかを判定します。
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As はエラーが特定の型にキャスト可能かどうかを判定します。
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap は既存のエラーをメッセージ付きでラップします。
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf は既存のエラーをフォーマット文字列でラップします。
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New は新しいエラーを作成します。
func New(message string) error {
	return errors.New(message)
}

// Newf は新しいフォーマット済みエラーを作成します。
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack はエラーにスタックトレースを付与します。
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	共通エラー変数
//
// ===========================================================================

var (
	// ErrEmptyData は空のデータが渡された場合のエラーです。
	ErrEmptyData = New("empty data")
)
