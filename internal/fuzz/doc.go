// Package fuzztests houses Go fuzz harnesses that exercise the pyproject-fmt
// pipeline (source -> lexer -> parser -> formatter) on arbitrary bytes. The
// goal is to catch panics, hangs and lossy round trips.
//
// Назначение: прогонять произвольный ввод через лексер, парсер и форматтер.
//
// Не делает: генерацию корпусов, запись файлов, выполнение CLI.
//
// Зависимости: internal/source, internal/diag, internal/lexer, internal/parser,
// internal/pyproject, internal/testkit.

package fuzztests
