// Package format pretty-prints a TOML syntax tree.
//
// Назначение: канонический вывод дерева после всех перестановок: пробелы,
// отступы, пустые строки и раскладка массивов вычисляются заново, текст
// значений и комментариев сохраняется как есть.
// Не делает: перестановку ключей или значений, IO.
// Зависимости: internal/syntax, go-runewidth (ширина строк).
package format
