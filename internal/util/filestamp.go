package util

import (
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"syscall"
)

// tailSize is how much of the end of a file goes into its stamp.
const tailSize = 2048

// FileStamp identifies one version of a file on disk. Two stamps of the same
// path are equal while the file is unchanged.
type FileStamp struct {
	ModTime int64  // modification time, unix nanoseconds
	Size    int64  // file size in bytes
	Inode   uint64 // changes when an editor replaces the file
	Tail    uint32 // CRC32 of the last 2KB
}

// StatFile computes the stamp of the file at path.
func StatFile(path string) (FileStamp, error) {
	file, err := os.Open(path)
	if err != nil {
		return FileStamp{}, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return FileStamp{}, err
	}

	stamp := FileStamp{
		ModTime: stat.ModTime().UnixNano(),
		Size:    stat.Size(),
	}
	if sysStat, ok := stat.Sys().(*syscall.Stat_t); ok {
		stamp.Inode = uint64(sysStat.Ino)
	}

	readSize := min(stamp.Size, int64(tailSize))
	if readSize == 0 {
		return stamp, nil
	}
	if _, err := file.Seek(-readSize, io.SeekEnd); err != nil {
		return FileStamp{}, fmt.Errorf("seeking %s: %w", path, err)
	}
	data := make([]byte, readSize)
	if _, err := io.ReadFull(file, data); err != nil {
		return FileStamp{}, fmt.Errorf("reading %s: %w", path, err)
	}
	stamp.Tail = crc32.ChecksumIEEE(data)
	return stamp, nil
}
