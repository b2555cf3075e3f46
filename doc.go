/*
Package lilt is an LL(1) parsing toolbox.

LiLT strives to be a smart and lightweight tool for analysing context-free
grammars and for predictive top-down parsing.
It focusses on the classical LL(1) construction: FIRST- and FOLLOW-sets,
predictive parse tables and a table-driven parser producing parse trees.
Package structure is as follows:

■ ll: Package ll implements the grammar model and its static analysis,
together with LL(1) parse-table construction and supporting data structures.

■ ll/ll1: Package ll1 implements a table-driven predictive parser on top
of the tables of package ll.

■ ll/scanner: Package scanner provides tokenizers feeding the parser.

The base package contains data types which are used throughout all the other
packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lilt
