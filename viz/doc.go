/*
Package viz renders the node structure of ordered bags to a console.

The output shows one node per line, indented by tree depth: internal nodes
with their separator keys and cached value counts, leaves with their
values. Coloring and line width adapt to the terminal when stdout is
interactive.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package viz
