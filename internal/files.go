package internal

import (
	"io"
	"log"
	"os"
)

// FileOpen is os.Open with panics in place of errors
func FileOpen(filename string) *os.File {
	file, err := os.Open(filename)
	if err != nil {
		log.Panic(err)
	}
	return file
}

// FileCreate is os.Create with panics in place of errors
func FileCreate(filename string) *os.File {
	file, err := os.Create(filename)
	if err != nil {
		log.Panic(err)
	}
	return file
}

// Close is file.Close() with panics in place of errors
func Close(file io.Closer) {
	if err := file.Close(); err != nil {
		log.Panic(err)
	}
}

// MkdirAll is os.MkdirAll with panics in place of errors
func MkdirAll(path string, perm os.FileMode) {
	if err := os.MkdirAll(path, perm); err != nil {
		log.Panic(err)
	}
}
