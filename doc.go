/*
Package ordbag offers an ordered multiset ("bag") of totally-ordered values.

Ordered bags

A bag keeps every inserted value, duplicates included, in a balanced 2-3
search tree whose leaves are chained in sorted order. This combination gives
logarithmic insertion and rank access together with cheap ordered traversal
in both directions:

	Operation     |   Bag           |  sorted slice
	--------------+-----------------+--------------
	Insert        |   O(log n)      |   O(n)
	At (rank)     |   O(log n)      |   O(1)
	First/Last    |   O(log n)      |   O(1)
	Find (>= v)   |   O(log n)      |   O(log n)
	Iterate       |   O(n)          |   O(n)

For workloads that interleave many insertions with ordered reads, bags keep
stable performance where slices degrade to repeated shifting.

There is no deletion and no key/value association: a bag stores one ordered
value type and only ever grows. The structure is transient and memory
resident; it has no serialized form.

A bag assumes a single logical writer. Multiple readers are fine as long as
no writer is active; any other discipline must be imposed externally, e.g.
by wrapping the bag in a mutex.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package ordbag

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// BagError is an error type for the ordbag module
type BagError string

func (e BagError) Error() string {
	return string(e)
}

// ErrNoComparator is flagged when a bag is created without a compare
// function for its value type.
const ErrNoComparator = BagError("cannot order values without a compare function")

// ErrRankOutOfBounds is flagged whenever a rank is greater than or equal to
// the number of values in the bag.
const ErrRankOutOfBounds = BagError("rank out of bounds")
