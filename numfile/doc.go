/*
Package numfile loads whitespace-separated integer files into ordered bags.

Loading of large files is done asynchronously: Load returns immediately
with a Loading handle, fragments are parsed and inserted on a background
goroutine, and progress is broadcast to subscribers. The finished bag is
handed over through Loading.Bag, which blocks until the load completes.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package numfile
